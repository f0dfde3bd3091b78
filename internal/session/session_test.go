package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/skt-storefront/internal/account"
	"github.com/angelmondragon/skt-storefront/internal/checkout"
	"github.com/angelmondragon/skt-storefront/internal/forms"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := New("test", Options{FeedbackDelay: 20 * time.Millisecond, RedirectDelay: 20 * time.Millisecond})
	t.Cleanup(s.Close)
	return s
}

func TestAddToCart(t *testing.T) {
	s := newTestSession(t)

	view, err := s.AddToCart("tee", "")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "M", view.Lines[0].Size)
	assert.Equal(t, 48, view.Total)

	view, err = s.AddToCart("tee", "s")
	require.NoError(t, err)
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, 2, view.ItemCount)

	_, err = s.AddToCart("scarf", "M")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = s.AddToCart("tee", "L")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = s.AddToCart("tee", "XXL")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, 2, s.Cart().ItemCount)
}

func TestChangeQtyAndRemove(t *testing.T) {
	s := newTestSession(t)
	_, err := s.AddToCart("cap", "M")
	require.NoError(t, err)

	view := s.ChangeQty("cap", "", 2)
	assert.Equal(t, 3, view.ItemCount)

	view = s.ChangeQty("cap", "m", -10)
	assert.Equal(t, 1, view.ItemCount, "quantity floors at one")

	view = s.RemoveFromCart("cap", "")
	assert.Empty(t, view.Lines)
}

func TestCheckoutThroughSession(t *testing.T) {
	s := newTestSession(t)
	_, err := s.AddToCart("tee", "M")
	require.NoError(t, err)

	_, err = s.PlaceOrder()
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	sum := s.ApplyPromo(" SKT10 ")
	assert.Equal(t, checkout.Totals{Subtotal: 48, Shipping: 12, Discount: 10, GrandTotal: 50}, sum.Totals)

	_, err = s.SelectPayment("bitcoin")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	sum, err = s.SelectPayment("paypal")
	require.NoError(t, err)
	assert.Equal(t, checkout.PaymentPayPal, sum.Payment)

	s.AdvanceCheckout()
	sum = s.AdvanceCheckout()
	assert.Equal(t, checkout.StepConfirmation, sum.Step)

	sum, err = s.PlaceOrder()
	require.NoError(t, err)
	assert.Equal(t, 50, sum.Totals.GrandTotal)
}

func TestSignUpUsesAddressAsPhoneRegion(t *testing.T) {
	s := newTestSession(t)

	auth, errs := s.SignUp(forms.SignupFields{
		FullName:        "Ada",
		Email:           "ada@example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		Phone:           "06 12 34 56 78",
		Address:         "France",
	})
	require.True(t, errs.Valid(), "unexpected errors: %v", errs)
	assert.True(t, auth.SignedIn)
	assert.Equal(t, "ada@example.com", auth.Email)
	assert.Equal(t, "France", s.Preferences().Location)
	assert.Equal(t, "FR", s.Preferences().CountryCode)

	assert.False(t, s.SignOut().SignedIn)
}

func TestLogInRejectsBadForm(t *testing.T) {
	s := newTestSession(t)
	auth, errs := s.LogIn(forms.LoginFields{Email: "nope"})
	assert.False(t, auth.SignedIn)
	assert.Equal(t, forms.MsgInvalidEmail, errs["email"])
	assert.Equal(t, forms.MsgRequired, errs["password"])
}

func TestWishlistMoveAddsToCart(t *testing.T) {
	s := newTestSession(t)

	wl, c, moved := s.MoveToCart("SKT Core Tee")
	require.True(t, moved)
	assert.Equal(t, []string{"SKT Air Knit Hoodie", "SKT Utility Jacket"}, wl.Items)
	assert.Equal(t, `Moved "SKT Core Tee" to cart.`, wl.Message)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "tee", c.Lines[0].ProductID)

	require.Eventually(t, func() bool { return s.Wishlist().Message == "" }, time.Second, 5*time.Millisecond)
}

func TestResetFlowThroughSession(t *testing.T) {
	s := newTestSession(t)

	view, errs, err := s.RequestPasswordReset("shopper@skt.store")
	require.NoError(t, err)
	require.True(t, errs.Valid())
	assert.Equal(t, account.ResetStepReset, view.Step)

	view, errs, err = s.ConfirmPasswordReset(forms.ResetFields{NewPassword: "longenough", ConfirmPassword: "longenough"})
	require.NoError(t, err)
	require.True(t, errs.Valid())
	assert.Equal(t, account.ResetStepDone, view.Step)

	require.Eventually(t, func() bool { return s.PasswordReset().RedirectToLogin }, time.Second, 5*time.Millisecond)
	assert.Equal(t, account.ResetStepRequest, s.RestartPasswordReset().Step)
}

func TestUpdatePreferences(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, ThemeLight, s.Preferences().Theme)

	dark, loc := "DARK", "Germany"
	prefs, err := s.UpdatePreferences(PreferencesUpdate{Theme: &dark, Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: ThemeDark, Location: "Germany", CountryCode: "DE"}, prefs)

	bad := "sepia"
	_, err = s.UpdatePreferences(PreferencesUpdate{Theme: &bad})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, ThemeDark, s.Preferences().Theme)
}

func TestCloseStopsPendingFlash(t *testing.T) {
	s := New("closing", Options{FeedbackDelay: 20 * time.Millisecond})
	s.MoveToCart("SKT Core Tee")
	s.Close()
	s.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, `Moved "SKT Core Tee" to cart.`, s.Wishlist().Message, "closed flashes keep their last message")
}

func TestClosedSessionDropsNewFlashes(t *testing.T) {
	s := New("swept", Options{FeedbackDelay: 20 * time.Millisecond})
	s.Close()

	view, errs := s.SaveProfile(forms.ProfileFields{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	require.True(t, errs.Valid())
	assert.Empty(t, view.Message)

	wish, _, moved := s.MoveToCart("SKT Utility Jacket")
	require.True(t, moved)
	assert.Empty(t, wish.Message)
}

func TestSessionSerializesConcurrentCalls(t *testing.T) {
	s := newTestSession(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddToCart("pants", "M")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Cart().ItemCount)
}
