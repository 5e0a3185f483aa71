package model

// Permissions lists which action families an account has authorized. An
// all-false value short-circuits every dispatcher branch with a
// connect-your-account message.
type Permissions struct {
	Email    bool `json:"email" mapstructure:"email"`
	Calendar bool `json:"calendar" mapstructure:"calendar"`
	Contacts bool `json:"contacts" mapstructure:"contacts"`
	SMS      bool `json:"sms" mapstructure:"sms"`
	Calls    bool `json:"calls" mapstructure:"calls"`
}

// Any reports whether at least one permission is granted.
func (p Permissions) Any() bool {
	return p.Email || p.Calendar || p.Contacts || p.SMS || p.Calls
}

// Account is one connected user account.
type Account struct {
	ID          string      `json:"id" mapstructure:"id"`
	Name        string      `json:"name" mapstructure:"name"`
	Email       string      `json:"email" mapstructure:"email"`
	Phone       string      `json:"phone" mapstructure:"phone"`
	Timezone    string      `json:"timezone" mapstructure:"timezone"`
	Permissions Permissions `json:"permissions" mapstructure:"permissions"`
}
