package session

import (
	"strings"

	"github.com/angelmondragon/skt-storefront/internal/account"
	"github.com/angelmondragon/skt-storefront/internal/forms"
)

type AuthView struct {
	SignedIn bool   `json:"signed_in"`
	Email    string `json:"email,omitempty"`
}

// SignUp validates the signup form. The address doubles as the location
// value when the form carries none, so the phone region follows what the
// shopper typed.
func (s *Session) SignUp(fields forms.SignupFields) (AuthView, forms.Errors) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(fields.Address) != "" {
		s.location = fields.Address
	}
	if fields.Location == "" {
		fields.Location = s.location
	}
	errs := forms.ValidateSignup(fields, s.resolver)
	if errs.Valid() {
		s.signIn(fields.Email)
	}
	return s.authView(), errs
}

func (s *Session) LogIn(fields forms.LoginFields) (AuthView, forms.Errors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs := forms.ValidateLogin(fields)
	if errs.Valid() {
		s.signIn(fields.Email)
	}
	return s.authView(), errs
}

func (s *Session) SignOut() AuthView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signedIn = false
	s.email = ""
	return s.authView()
}

func (s *Session) Auth() AuthView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authView()
}

func (s *Session) signIn(email string) {
	s.signedIn = true
	s.email = strings.TrimSpace(email)
}

func (s *Session) authView() AuthView {
	return AuthView{SignedIn: s.signedIn, Email: s.email}
}

type ProfileView struct {
	Profile account.Profile `json:"profile"`
	Message string          `json:"message,omitempty"`
}

func (s *Session) Profile() ProfileView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileView()
}

func (s *Session) SaveProfile(fields forms.ProfileFields) (ProfileView, forms.Errors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs := s.profile.Save(fields)
	return s.profileView(), errs
}

func (s *Session) profileView() ProfileView {
	return ProfileView{Profile: s.profile.Profile(), Message: s.profile.Message()}
}

type WishlistView struct {
	Items   []string `json:"items"`
	Message string   `json:"message,omitempty"`
}

func (s *Session) Wishlist() WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlistView()
}

// MoveToCart reports false when name is not on the wishlist.
func (s *Session) MoveToCart(name string) (WishlistView, CartView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	moved := s.wishlist.MoveToCart(name, s.catalog, &s.cart)
	return s.wishlistView(), s.cartView(), moved
}

func (s *Session) wishlistView() WishlistView {
	return WishlistView{Items: s.wishlist.Items(), Message: s.wishlist.Message()}
}

type ResetView struct {
	Step            account.ResetStep `json:"step"`
	Email           string            `json:"email,omitempty"`
	Message         string            `json:"message,omitempty"`
	RedirectToLogin bool              `json:"redirect_to_login"`
}

func (s *Session) PasswordReset() ResetView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetView()
}

func (s *Session) RequestPasswordReset(email string) (ResetView, forms.Errors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs, err := s.reset.Request(email)
	return s.resetView(), errs, err
}

func (s *Session) ConfirmPasswordReset(fields forms.ResetFields) (ResetView, forms.Errors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs, err := s.reset.Reset(fields)
	return s.resetView(), errs, err
}

func (s *Session) RestartPasswordReset() ResetView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset.Restart()
	return s.resetView()
}

func (s *Session) resetView() ResetView {
	return ResetView{
		Step:            s.reset.Step(),
		Email:           s.reset.Email(),
		Message:         s.reset.Message(),
		RedirectToLogin: s.reset.RedirectToLogin(),
	}
}
