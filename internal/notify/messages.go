package notify

import (
	"fmt"

	"github.com/systemconf/iftar-cli/internal/prayer"
)

// message is a fixed reminder title/body pair.
type message struct {
	title string
	body  string
}

// Reminder texts per locale. The Turkish strings are the product's original
// voice; English is a plain translation.
var (
	iftarWarnMsg = map[string]message{
		"tr": {"🌙 İftar Yaklaşıyor!", "İftara 15 dakika kaldı. Hazırlıklarınızı yapın!"},
		"en": {"🌙 Iftar Is Near!", "15 minutes left until iftar. Get ready!"},
	}
	iftarNowMsg = map[string]message{
		"tr": {"🕌 İftar Vakti!", "Hayırlı iftarlar! Oruçlarınız kabul olsun."},
		"en": {"🕌 Iftar Time!", "Blessed iftar! May your fast be accepted."},
	}
	sahurWarnMsg = map[string]message{
		"tr": {"🌅 Sahur Bitiyor!", "İmsak vaktine 30 dakika kaldı. Son lokmalarınızı alın!"},
		"en": {"🌅 Suhoor Is Ending!", "30 minutes left until imsak. Finish your meal!"},
	}
	sahurEndMsg = map[string]message{
		"tr": {"🌅 İmsak Vakti!", "Sahur sona erdi. Hayırlı sahurlar, oruç başladı."},
		"en": {"🌅 Imsak Time!", "Suhoor has ended. The fast has begun."},
	}
	waterMsg = map[string]message{
		"tr": {"💧 Su İçmeyi Unutmayın!", "İmsaka 45 dakika kaldı. Bol su için!"},
		"en": {"💧 Drink Water!", "45 minutes until imsak. Stay hydrated!"},
	}
)

// localized picks the message for lang, falling back to Turkish, the
// product's home locale.
func localized(table map[string]message, lang string) message {
	if m, ok := table[lang]; ok {
		return m
	}
	return table["tr"]
}

// prayerMsg builds the per-prayer reminder text for the given prayer name.
func prayerMsg(name, lang string) message {
	label := prayer.DisplayName(name, lang)
	if lang == "tr" {
		return message{
			title: fmt.Sprintf("🕌 %s Vakti", label),
			body:  fmt.Sprintf("%s vakti girdi.", label),
		}
	}
	return message{
		title: fmt.Sprintf("🕌 %s Time", label),
		body:  fmt.Sprintf("It is time for %s.", label),
	}
}
