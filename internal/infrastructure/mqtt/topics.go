package mqtt

import (
	"strings"
	"unicode"
)

// TopicPrefix is the root of every smarthome topic.
const TopicPrefix = "smarthome"

// Topics provides builders for smarthome MQTT topics.
//
//	mqtt.Topics{}.Report("My Home") // "smarthome/report/my-home"
type Topics struct{}

// SystemStatus returns the retained online/offline status topic.
func (Topics) SystemStatus() string {
	return TopicPrefix + "/system/status"
}

// Report returns the retained report topic for a home.
func (Topics) Report(home string) string {
	return TopicPrefix + "/report/" + Slug(home)
}

// Slug lowercases s and replaces every run of characters other than letters
// and digits with a single hyphen, so names are safe as topic levels.
// MQTT wildcards (+, #) and level separators never survive.
func Slug(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}
