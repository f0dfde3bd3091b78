package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/skt-storefront/internal/cart"
	"github.com/angelmondragon/skt-storefront/internal/catalog"
	"github.com/angelmondragon/skt-storefront/internal/forms"
	pkgerrors "github.com/angelmondragon/skt-storefront/pkg/errors"
)

const (
	shortDelay = 20 * time.Millisecond
	waitFor    = time.Second
	tick       = 5 * time.Millisecond
)

func TestProfileSaveFlashesAndClears(t *testing.T) {
	p := NewProfileEditor(shortDelay)
	t.Cleanup(p.Close)

	errs := p.Save(forms.ProfileFields{Name: " Ada ", Email: "ada@example.com", Password: "longenough"})
	require.True(t, errs.Valid())
	assert.Equal(t, Profile{Name: "Ada", Email: "ada@example.com"}, p.Profile())
	assert.Equal(t, MsgProfileSaved, p.Message())

	require.Eventually(t, func() bool { return p.Message() == "" }, waitFor, tick)
}

func TestProfileSaveRejectsInvalidFields(t *testing.T) {
	p := NewProfileEditor(shortDelay)
	t.Cleanup(p.Close)

	errs := p.Save(forms.ProfileFields{Name: "Ada", Email: "bad", Password: "longenough"})
	assert.Equal(t, forms.MsgEnterValidEmail, errs["email"])
	assert.Equal(t, Profile{}, p.Profile())
	assert.Empty(t, p.Message())
}

func TestWishlistMoveToCart(t *testing.T) {
	w := NewWishlist(DefaultWishlist, shortDelay)
	t.Cleanup(w.Close)
	var c cart.Cart

	require.True(t, w.MoveToCart("SKT Utility Jacket", catalog.Default(), &c))
	assert.Equal(t, []string{"SKT Air Knit Hoodie", "SKT Core Tee"}, w.Items())
	assert.Equal(t, `Moved "SKT Utility Jacket" to cart.`, w.Message())

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "jacket", lines[0].ProductID)
	assert.Equal(t, catalog.DefaultSize, lines[0].Size)
	assert.Equal(t, 148, lines[0].FinalPrice)

	require.Eventually(t, func() bool { return w.Message() == "" }, waitFor, tick)
}

func TestWishlistMoveUnknownIsNoop(t *testing.T) {
	w := NewWishlist(DefaultWishlist, shortDelay)
	t.Cleanup(w.Close)
	var c cart.Cart

	assert.False(t, w.MoveToCart("SKT Mystery Scarf", catalog.Default(), &c))
	assert.Equal(t, DefaultWishlist, w.Items())
	assert.True(t, c.IsEmpty())
	assert.Empty(t, w.Message())
}

func TestWishlistItemsIsACopy(t *testing.T) {
	w := NewWishlist(DefaultWishlist, shortDelay)
	t.Cleanup(w.Close)
	items := w.Items()
	items[0] = "changed"
	assert.Equal(t, "SKT Air Knit Hoodie", w.Items()[0])
	assert.Equal(t, "SKT Air Knit Hoodie", DefaultWishlist[0])
}

func TestPasswordResetFlow(t *testing.T) {
	r := NewPasswordReset(shortDelay)
	t.Cleanup(r.Close)
	assert.Equal(t, ResetStepRequest, r.Step())

	errs, err := r.Request("")
	require.NoError(t, err)
	assert.Equal(t, forms.MsgResetEmailRequired, errs["email"])
	assert.Equal(t, ResetStepRequest, r.Step())

	errs, err = r.Request(" shopper@skt.store ")
	require.NoError(t, err)
	require.True(t, errs.Valid())
	assert.Equal(t, ResetStepReset, r.Step())
	assert.Equal(t, "shopper@skt.store", r.Email())
	assert.Equal(t, MsgResetLinkSent, r.Message())

	errs, err = r.Reset(forms.ResetFields{NewPassword: "longenough", ConfirmPassword: "nope"})
	require.NoError(t, err)
	assert.Equal(t, forms.MsgPasswordMismatch, errs["confirmPassword"])
	assert.Equal(t, ResetStepReset, r.Step())

	errs, err = r.Reset(forms.ResetFields{NewPassword: "longenough", ConfirmPassword: "longenough"})
	require.NoError(t, err)
	require.True(t, errs.Valid())
	assert.Equal(t, ResetStepDone, r.Step())
	assert.Equal(t, MsgPasswordUpdated, r.Message())
	assert.False(t, r.RedirectToLogin())

	require.Eventually(t, r.RedirectToLogin, waitFor, tick)
}

func TestPasswordResetOutOfStep(t *testing.T) {
	r := NewPasswordReset(shortDelay)
	t.Cleanup(r.Close)

	_, err := r.Reset(forms.ResetFields{NewPassword: "longenough", ConfirmPassword: "longenough"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))

	_, err = r.Request("a@b.co")
	require.NoError(t, err)
	_, err = r.Request("a@b.co")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
}

func TestPasswordResetRestartCancelsRedirect(t *testing.T) {
	r := NewPasswordReset(50 * time.Millisecond)
	t.Cleanup(r.Close)

	_, err := r.Request("a@b.co")
	require.NoError(t, err)
	_, err = r.Reset(forms.ResetFields{NewPassword: "longenough", ConfirmPassword: "longenough"})
	require.NoError(t, err)

	r.Restart()
	assert.Equal(t, ResetStepRequest, r.Step())
	assert.Empty(t, r.Message())
	time.Sleep(100 * time.Millisecond)
	assert.False(t, r.RedirectToLogin())
}
