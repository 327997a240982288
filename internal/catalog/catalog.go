// Package catalog holds the static reference data the signup wizard sells
// from: priced platform/feature/support items, industries, currencies, and
// the third-party integration directory. Loaded once, never mutated.
package catalog

import "github.com/gosimple/slug"

// WhatsAppChannelUnitPrice is the flat per-channel price for additional
// WhatsApp channels, in the account currency.
const WhatsAppChannelUnitPrice = 99

// Item is a purchasable catalog entry with a monthly unit price.
type Item struct {
	ID        string
	Label     string
	UnitPrice int
	Icon      Icon
}

// Industry is a non-priced classification option.
type Industry struct {
	ID    string
	Label string
	Icon  Icon
}

// Currency is a display currency. It never participates in arithmetic.
type Currency struct {
	Code   string
	Label  string
	Symbol string
}

// IntegrationItem is a single connectable product. The ID is a stable slug of
// the display name and is what gets stored in the configuration.
type IntegrationItem struct {
	ID   string
	Name string
}

// IntegrationCategory groups integration items under a titled section.
type IntegrationCategory struct {
	Title string
	Icon  Icon
	Items []IntegrationItem
}

// Catalog bundles all reference lists.
type Catalog struct {
	Platforms    []Item
	Features     []Item
	Support      []Item
	Industries   []Industry
	Currencies   []Currency
	Integrations []IntegrationCategory
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Platforms: []Item{
			{ID: "whatsapp", Label: "WhatsApp", UnitPrice: 150, Icon: IconMessageCircle},
			{ID: "instagram", Label: "Instagram", UnitPrice: 150, Icon: IconInstagram},
			{ID: "messenger", Label: "Messenger", UnitPrice: 100, Icon: IconFacebook},
			{ID: "tiktok", Label: "TikTok", UnitPrice: 200, Icon: IconVideo},
			{ID: "website", Label: "Website Widget", UnitPrice: 50, Icon: IconGlobe},
			{ID: "rcs", Label: "RCS", UnitPrice: 120, Icon: IconMessageSquare},
		},
		Features: []Item{
			{ID: "bot_building", Label: "AI Bot Building", UnitPrice: 300, Icon: IconBot},
			{ID: "automation", Label: "AI Automation", UnitPrice: 250, Icon: IconZap},
			{ID: "bookings", Label: "Appointment Bookings", UnitPrice: 200, Icon: IconCalendarCheck},
			{ID: "payments", Label: "Payments", UnitPrice: 150, Icon: IconCreditCard},
		},
		Support: []Item{
			{ID: "sup_bot", Label: "Bot Building Support", UnitPrice: 500, Icon: IconHeadphones},
			{ID: "sup_auto", Label: "Automation Support", UnitPrice: 400, Icon: IconWrench},
			{ID: "sup_camp", Label: "Campaigns Mgmt", UnitPrice: 350, Icon: IconMegaphone},
			{ID: "sup_mon", Label: "24/7 Monitoring", UnitPrice: 600, Icon: IconActivity},
		},
		Industries: []Industry{
			{ID: "ecommerce", Label: "E-Commerce", Icon: IconShoppingCart},
			{ID: "healthcare", Label: "Healthcare", Icon: IconHeartPulse},
			{ID: "real_estate", Label: "Real Estate", Icon: IconBuilding},
			{ID: "education", Label: "Education", Icon: IconGraduationCap},
			{ID: "hospitality", Label: "Hospitality", Icon: IconCoffee},
			{ID: "technology", Label: "Technology", Icon: IconLaptop},
			{ID: "finance", Label: "Finance", Icon: IconBanknote},
			{ID: "other", Label: "Other", Icon: IconMore},
		},
		Currencies: []Currency{
			{Code: "AED", Label: "AED", Symbol: "AED"},
			{Code: "USD", Label: "USD", Symbol: "$"},
			{Code: "EUR", Label: "EUR", Symbol: "€"},
			{Code: "GBP", Label: "GBP", Symbol: "£"},
		},
		Integrations: []IntegrationCategory{
			category("E-commerce Platforms", IconShoppingCart,
				"Shopify", "WooCommerce", "BigCommerce"),
			category("CRM Systems", IconUsers,
				"HubSpot", "Zoho CRM", "Salesforce", "Pipedrive", "Freshsales", "LeadSquared"),
			category("Marketing Automation & Engagement", IconMegaphone,
				"Mailchimp", "ActiveCampaign", "Brevo", "Klaviyo", "MoEngage", "WebEngage"),
			category("Automation & Integration Platforms", IconWorkflow,
				"Zapier", "Make", "Pabbly Connect"),
			category("Customer Support & Helpdesk", IconLifeBuoy,
				"Zendesk", "Freshdesk", "Zoho Desk", "Intercom", "Gorgias", "Help Scout"),
			category("Spreadsheets & Databases", IconTable,
				"Google Sheets", "Microsoft Excel Online", "Airtable"),
			category("Calendars & Scheduling", IconCalendar,
				"Google Calendar", "Calendly", "Microsoft Outlook Calendar"),
			category("Payments & Invoicing", IconCreditCard,
				"Razorpay", "Stripe", "PayPal"),
		},
	}
}

func category(title string, icon Icon, names ...string) IntegrationCategory {
	items := make([]IntegrationItem, 0, len(names))
	for _, name := range names {
		items = append(items, IntegrationItem{ID: slug.Make(name), Name: name})
	}
	return IntegrationCategory{Title: title, Icon: icon, Items: items}
}

func findItem(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Platform looks up a platform item by id.
func (c *Catalog) Platform(id string) (Item, bool) { return findItem(c.Platforms, id) }

// Feature looks up a feature item by id.
func (c *Catalog) Feature(id string) (Item, bool) { return findItem(c.Features, id) }

// SupportTier looks up a support item by id.
func (c *Catalog) SupportTier(id string) (Item, bool) { return findItem(c.Support, id) }

// IndustryLabel returns the display label for an industry id, or the empty
// string if unknown.
func (c *Catalog) IndustryLabel(id string) string {
	for _, ind := range c.Industries {
		if ind.ID == id {
			return ind.Label
		}
	}
	return ""
}

// CurrencySymbol returns the symbol for a currency code. Unknown codes fall
// back to the code itself: currency is display-only and must never error.
func (c *Catalog) CurrencySymbol(code string) string {
	for _, cur := range c.Currencies {
		if cur.Code == code {
			return cur.Symbol
		}
	}
	return code
}

// Integration resolves an integration item by its slug id across all
// categories.
func (c *Catalog) Integration(id string) (IntegrationItem, bool) {
	for _, cat := range c.Integrations {
		for _, it := range cat.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return IntegrationItem{}, false
}
