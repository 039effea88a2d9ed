package domain

// Default values applied to a fresh installation and back-filled by Repair.
const (
	DefaultNewAccountName = "New Account"
	DefaultExchangeRate   = 10
)

// GlobalSettings holds the household-wide preferences stored in the document.
type GlobalSettings struct {
	NewAccountName string `json:"newAccountName"` // name applied to newly created accounts
	ExchangeRate   int    `json:"exchangeRate"`   // coins required per exchange unit; always >= 1
}

// Document is the single persisted root object. Account order is creation
// order and accounts are addressed by ordinal position within a session.
type Document struct {
	GlobalSettings GlobalSettings `json:"globalSettings"`
	Accounts       []Account      `json:"accounts"`
}

// NewDocument returns the first-run document: no accounts, default settings.
func NewDocument() *Document {
	return &Document{
		GlobalSettings: GlobalSettings{
			NewAccountName: DefaultNewAccountName,
			ExchangeRate:   DefaultExchangeRate,
		},
		Accounts: []Account{},
	}
}

// Repair back-fills missing sections of a loaded document, each one
// independently. It is an idempotent field-presence check, not a
// version-tracked migration scheme.
func (d *Document) Repair() {
	if d.GlobalSettings == (GlobalSettings{}) {
		d.GlobalSettings = GlobalSettings{
			NewAccountName: DefaultNewAccountName,
			ExchangeRate:   DefaultExchangeRate,
		}
	}
	if d.Accounts == nil {
		d.Accounts = []Account{}
	}
}

// Account returns the account at the given ordinal, or false when the
// ordinal is out of range.
func (d *Document) Account(index int) (*Account, bool) {
	if index < 0 || index >= len(d.Accounts) {
		return nil, false
	}
	return &d.Accounts[index], true
}
