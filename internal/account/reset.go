package account

import (
	"strings"
	"time"

	"github.com/angelmondragon/skt-storefront/internal/forms"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
	"github.com/angelmondragon/skt-storefront/pkg/feedback"
)

type ResetStep string

const (
	ResetStepRequest ResetStep = "request"
	ResetStepReset   ResetStep = "reset"
	ResetStepDone    ResetStep = "done"
)

const (
	MsgResetLinkSent   = "If an account exists for this email, a reset link has been sent."
	MsgPasswordUpdated = "Your password has been updated."
)

// PasswordReset walks request, reset and done. Reaching done arms a redirect
// that fires after the configured delay.
type PasswordReset struct {
	step     ResetStep
	email    string
	message  string
	redirect *feedback.Latch
}

func NewPasswordReset(redirectDelay time.Duration) *PasswordReset {
	return &PasswordReset{
		step:     ResetStepRequest,
		redirect: feedback.NewLatch(redirectDelay),
	}
}

func (r *PasswordReset) Step() ResetStep {
	return r.step
}

func (r *PasswordReset) Email() string {
	return r.email
}

func (r *PasswordReset) Message() string {
	return r.message
}

// RedirectToLogin turns true once the redirect delay has passed after done.
func (r *PasswordReset) RedirectToLogin() bool {
	return r.redirect.Fired()
}

// Request asks for a reset link. A valid email moves the flow to the reset
// step whether or not an account exists for it.
func (r *PasswordReset) Request(email string) (forms.Errors, error) {
	if r.step != ResetStepRequest {
		return nil, r.outOfStep(ResetStepRequest)
	}
	errs := forms.ValidateResetEmail(email)
	if !errs.Valid() {
		return errs, nil
	}
	r.email = strings.TrimSpace(email)
	r.message = MsgResetLinkSent
	r.step = ResetStepReset
	return errs, nil
}

// Reset sets the new password and finishes the flow.
func (r *PasswordReset) Reset(fields forms.ResetFields) (forms.Errors, error) {
	if r.step != ResetStepReset {
		return nil, r.outOfStep(ResetStepReset)
	}
	errs := forms.ValidateReset(fields)
	if !errs.Valid() {
		return errs, nil
	}
	r.message = MsgPasswordUpdated
	r.step = ResetStepDone
	r.redirect.Arm()
	return errs, nil
}

// Restart returns to the request step and cancels a pending redirect.
func (r *PasswordReset) Restart() {
	r.redirect.Reset()
	r.step = ResetStepRequest
	r.email = ""
	r.message = ""
}

func (r *PasswordReset) Close() {
	r.redirect.Close()
}

func (r *PasswordReset) outOfStep(want ResetStep) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, "password reset is not at the "+string(want)+" step").
		WithDetails(map[string]string{"step": string(r.step)})
}
