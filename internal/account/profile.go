// Package account holds the signed-in shopper's profile, wishlist and
// password reset flow. Its types are not safe for concurrent use; the owning
// session serializes access. Flash timers run on their own goroutines and
// only touch the flash they belong to.
package account

import (
	"strings"
	"time"

	"github.com/angelmondragon/skt-storefront/internal/forms"
	"github.com/angelmondragon/skt-storefront/pkg/feedback"
)

const MsgProfileSaved = "Profile saved."

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileEditor validates profile saves and flashes a confirmation.
type ProfileEditor struct {
	profile Profile
	saved   *feedback.Flash
}

func NewProfileEditor(flashDelay time.Duration) *ProfileEditor {
	return &ProfileEditor{saved: feedback.NewFlash(flashDelay)}
}

// Save stores the profile when every field passes. The password is checked
// but never kept.
func (p *ProfileEditor) Save(fields forms.ProfileFields) forms.Errors {
	errs := forms.ValidateProfile(fields)
	if !errs.Valid() {
		return errs
	}
	p.profile = Profile{
		Name:  strings.TrimSpace(fields.Name),
		Email: strings.TrimSpace(fields.Email),
	}
	p.saved.Show(MsgProfileSaved)
	return errs
}

func (p *ProfileEditor) Profile() Profile {
	return p.profile
}

// Message is MsgProfileSaved until the flash delay passes, then empty.
func (p *ProfileEditor) Message() string {
	return p.saved.Message()
}

func (p *ProfileEditor) Close() {
	p.saved.Close()
}
