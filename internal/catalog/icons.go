package catalog

// Icon identifies a glyph in the typed icon registry. Unknown values resolve
// to the default glyph rather than failing.
type Icon int

const (
	IconDefault Icon = iota
	IconMessageCircle
	IconInstagram
	IconFacebook
	IconVideo
	IconGlobe
	IconMessageSquare
	IconBot
	IconZap
	IconCalendarCheck
	IconCreditCard
	IconHeadphones
	IconWrench
	IconMegaphone
	IconActivity
	IconShoppingCart
	IconHeartPulse
	IconBuilding
	IconGraduationCap
	IconCoffee
	IconLaptop
	IconBanknote
	IconMore
	IconUsers
	IconWorkflow
	IconLifeBuoy
	IconTable
	IconCalendar
	IconWallet
	IconUser
	IconLayers
)

var iconGlyphs = map[Icon]string{
	IconMessageCircle: "✆",
	IconInstagram:     "◈",
	IconFacebook:      "ƒ",
	IconVideo:         "▶",
	IconGlobe:         "⊕",
	IconMessageSquare: "❑",
	IconBot:           "⚙",
	IconZap:           "⚡",
	IconCalendarCheck: "☑",
	IconCreditCard:    "▤",
	IconHeadphones:    "Ω",
	IconWrench:        "⚒",
	IconMegaphone:     "◅",
	IconActivity:      "∿",
	IconShoppingCart:  "⛁",
	IconHeartPulse:    "♥",
	IconBuilding:      "⌂",
	IconGraduationCap: "≙",
	IconCoffee:        "☕",
	IconLaptop:        "▭",
	IconBanknote:      "¤",
	IconMore:          "…",
	IconUsers:         "⚇",
	IconWorkflow:      "⇶",
	IconLifeBuoy:      "◎",
	IconTable:         "▦",
	IconCalendar:      "▣",
	IconWallet:        "⌺",
	IconUser:          "☺",
	IconLayers:        "≡",
}

// Glyph returns the terminal glyph for the icon. Unregistered icons fall back
// to a neutral bullet so an unknown key never breaks rendering.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return "•"
}
