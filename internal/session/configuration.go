// Package session owns the per-session signup state: the Configuration
// snapshot accumulating the user's choices, the pure operations that produce
// new snapshots, the pricing engine, and the in-memory event journal.
package session

// Balance bounds for the prepaid deposit, in the account currency.
const (
	BalanceMin  = 1000
	BalanceMax  = 50000
	BalanceStep = 1000
)

// StepCount is the number of wizard steps.
const StepCount = 6

// PlatformSelection is one chosen messaging platform with a strictly
// positive quantity. Selections at quantity zero are removed, never stored.
type PlatformSelection struct {
	CatalogID string `json:"catalog_id"`
	Quantity  int    `json:"quantity"`
}

// Configuration is the single source of truth for a signup session. It is
// treated as an immutable snapshot: every operation returns a new value and
// never aliases the receiver's slices.
type Configuration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Website   string `json:"website"`

	Industry      string `json:"industry"`
	Currency      string `json:"currency"`
	TermsAccepted bool   `json:"terms_accepted"`

	Platforms []PlatformSelection `json:"platforms"`
	Features  []string            `json:"features"`
	Support   []string            `json:"support"`

	WhatsAppChannels int `json:"whatsapp_channels"`
	Balance          int `json:"balance"`

	Integrations []string `json:"integrations"`
}

// Default returns the configuration every session starts from.
func Default() Configuration {
	return Configuration{
		Currency:      "AED",
		TermsAccepted: true,
		Balance:       BalanceMin,
	}
}

// ProfileField enumerates the free-text and select fields on the profile
// step. The core stores whatever the input collaborator hands it.
type ProfileField int

const (
	FieldFirstName ProfileField = iota
	FieldLastName
	FieldEmail
	FieldPhone
	FieldCompany
	FieldWebsite
	FieldIndustry
	FieldCurrency
)

var profileFieldNames = map[ProfileField]string{
	FieldFirstName: "first_name",
	FieldLastName:  "last_name",
	FieldEmail:     "email",
	FieldPhone:     "phone",
	FieldCompany:   "company",
	FieldWebsite:   "website",
	FieldIndustry:  "industry",
	FieldCurrency:  "currency",
}

// String returns the wire name of the field as used in journal events.
func (f ProfileField) String() string {
	if name, ok := profileFieldNames[f]; ok {
		return name
	}
	return "unknown"
}

func profileFieldFromName(name string) (ProfileField, bool) {
	for f, n := range profileFieldNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// Field returns the current value of a profile field.
func (c Configuration) Field(f ProfileField) string {
	switch f {
	case FieldFirstName:
		return c.FirstName
	case FieldLastName:
		return c.LastName
	case FieldEmail:
		return c.Email
	case FieldPhone:
		return c.Phone
	case FieldCompany:
		return c.Company
	case FieldWebsite:
		return c.Website
	case FieldIndustry:
		return c.Industry
	case FieldCurrency:
		return c.Currency
	}
	return ""
}

// WithField returns a snapshot with one profile field replaced.
func (c Configuration) WithField(f ProfileField, value string) Configuration {
	switch f {
	case FieldFirstName:
		c.FirstName = value
	case FieldLastName:
		c.LastName = value
	case FieldEmail:
		c.Email = value
	case FieldPhone:
		c.Phone = value
	case FieldCompany:
		c.Company = value
	case FieldWebsite:
		c.Website = value
	case FieldIndustry:
		c.Industry = value
	case FieldCurrency:
		c.Currency = value
	}
	return c
}

// WithTerms returns a snapshot with the terms checkbox set.
func (c Configuration) WithTerms(accepted bool) Configuration {
	c.TermsAccepted = accepted
	return c
}

// Quantity reports the selected quantity for a platform id, zero when the
// platform is not selected.
func (c Configuration) Quantity(catalogID string) int {
	for _, sel := range c.Platforms {
		if sel.CatalogID == catalogID {
			return sel.Quantity
		}
	}
	return 0
}

// WithQuantity applies a quantity delta for a platform id. An unselected id
// with a positive delta is inserted; a selection dropping to zero or below is
// removed entirely. Negative deltas on unselected ids are no-ops.
func (c Configuration) WithQuantity(catalogID string, delta int) Configuration {
	out := make([]PlatformSelection, 0, len(c.Platforms)+1)
	found := false
	for _, sel := range c.Platforms {
		if sel.CatalogID != catalogID {
			out = append(out, sel)
			continue
		}
		found = true
		if q := sel.Quantity + delta; q > 0 {
			out = append(out, PlatformSelection{CatalogID: catalogID, Quantity: q})
		}
	}
	if !found && delta > 0 {
		out = append(out, PlatformSelection{CatalogID: catalogID, Quantity: delta})
	}
	c.Platforms = out
	return c
}

// SelectionField names one of the set-valued collections toggled by the
// features, support, and integrations steps.
type SelectionField int

const (
	SelectFeatures SelectionField = iota
	SelectSupport
	SelectIntegrations
)

var selectionFieldNames = map[SelectionField]string{
	SelectFeatures:     "feature",
	SelectSupport:      "support",
	SelectIntegrations: "integration",
}

// String returns the wire name of the collection as used in journal events.
func (f SelectionField) String() string {
	if name, ok := selectionFieldNames[f]; ok {
		return name
	}
	return "unknown"
}

func selectionFieldFromName(name string) (SelectionField, bool) {
	for f, n := range selectionFieldNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

func (c Configuration) selection(field SelectionField) []string {
	switch field {
	case SelectFeatures:
		return c.Features
	case SelectSupport:
		return c.Support
	case SelectIntegrations:
		return c.Integrations
	}
	return nil
}

// Has reports set membership of an id in the given collection.
func (c Configuration) Has(field SelectionField, id string) bool {
	for _, v := range c.selection(field) {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle flips membership of an id in the given collection: present ids are
// removed, absent ids appended. One implementation serves all three sets.
func (c Configuration) Toggle(field SelectionField, id string) Configuration {
	cur := c.selection(field)
	out := make([]string, 0, len(cur)+1)
	removed := false
	for _, v := range cur {
		if v == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		out = append(out, id)
	}
	switch field {
	case SelectFeatures:
		c.Features = out
	case SelectSupport:
		c.Support = out
	case SelectIntegrations:
		c.Integrations = out
	}
	return c
}

// WithBalance stores a prepaid balance, clamping to [BalanceMin, BalanceMax]
// and snapping to the nearest BalanceStep. The stored value feeds the payable
// total, so the clamp lives here at the data boundary rather than trusting
// control-level min/max.
func (c Configuration) WithBalance(raw int) Configuration {
	c.Balance = ClampBalance(raw)
	return c
}

// ClampBalance normalizes a raw slider value into the valid balance range.
// In-range multiples of BalanceStep pass through unchanged.
func ClampBalance(raw int) int {
	if raw < BalanceMin {
		return BalanceMin
	}
	if raw > BalanceMax {
		return BalanceMax
	}
	offset := raw - BalanceMin
	snapped := ((offset + BalanceStep/2) / BalanceStep) * BalanceStep
	return BalanceMin + snapped
}

// WithChannels stores the WhatsApp channel count, floored at zero.
func (c Configuration) WithChannels(count int) Configuration {
	if count < 0 {
		count = 0
	}
	c.WhatsAppChannels = count
	return c
}
