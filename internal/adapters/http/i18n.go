package web

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Notification keys. Each maps to one ar and one fr string.
const (
	msgLoadFailed        = "error.load_failed"
	msgSaveFailed        = "error.save_failed"
	msgInvalidRequest    = "error.invalid_request"
	msgInvalidYear       = "error.invalid_year"
	msgUnknownMonth      = "error.unknown_month"
	msgWeekNotFound      = "error.week_not_found"
	msgInvalidDate       = "error.invalid_date"
	msgDateOutsideSeason = "error.date_outside_season"
	msgInvalidMonth      = "error.invalid_month"
	msgInvalidAthlete    = "error.invalid_athlete"
	msgInvalidTimetable  = "error.invalid_timetable"
	msgNotFound          = "error.not_found"
)

func init() {
	ar := language.Arabic
	message.SetString(ar, msgLoadFailed, "تعذر تحميل البيانات. حاول مرة أخرى.")
	message.SetString(ar, msgSaveFailed, "تعذر حفظ التغييرات. حاول مرة أخرى.")
	message.SetString(ar, msgInvalidRequest, "الطلب غير صالح.")
	message.SetString(ar, msgInvalidYear, "الموسم الرياضي غير صالح.")
	message.SetString(ar, msgUnknownMonth, "الشهر غير معروف.")
	message.SetString(ar, msgWeekNotFound, "الأسبوع غير موجود في هذا الشهر.")
	message.SetString(ar, msgInvalidDate, "التاريخ غير صالح، الصيغة المطلوبة YYYY-MM-DD.")
	message.SetString(ar, msgDateOutsideSeason, "التاريخ خارج الموسم الرياضي (سبتمبر إلى جوان).")
	message.SetString(ar, msgInvalidMonth, "الشهر غير صالح، الصيغة المطلوبة YYYY-MM.")
	message.SetString(ar, msgInvalidAthlete, "بيانات الرياضي غير صالحة.")
	message.SetString(ar, msgInvalidTimetable, "جدول التوقيت غير صالح.")
	message.SetString(ar, msgNotFound, "العنصر غير موجود.")

	fr := language.French
	message.SetString(fr, msgLoadFailed, "Impossible de charger les données. Réessayez.")
	message.SetString(fr, msgSaveFailed, "Impossible d'enregistrer les modifications. Réessayez.")
	message.SetString(fr, msgInvalidRequest, "Requête invalide.")
	message.SetString(fr, msgInvalidYear, "Saison sportive invalide.")
	message.SetString(fr, msgUnknownMonth, "Mois inconnu.")
	message.SetString(fr, msgWeekNotFound, "Cette semaine n'existe pas dans le mois.")
	message.SetString(fr, msgInvalidDate, "Date invalide, format attendu AAAA-MM-JJ.")
	message.SetString(fr, msgDateOutsideSeason, "La date est hors de la saison sportive (septembre à juin).")
	message.SetString(fr, msgInvalidMonth, "Mois invalide, format attendu AAAA-MM.")
	message.SetString(fr, msgInvalidAthlete, "Données de l'athlète invalides.")
	message.SetString(fr, msgInvalidTimetable, "Emploi du temps invalide.")
	message.SetString(fr, msgNotFound, "Élément introuvable.")
}

// localize returns the notification for key in tag's language.
func localize(tag language.Tag, key string) string {
	return message.NewPrinter(tag).Sprintf(key)
}
