package forms

import "github.com/angelmondragon/skt-storefront/internal/location"

type SignupFields struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	// Location is the shopper's chosen country, used as the phone region hint
	// ahead of the address.
	Location string `json:"location,omitempty"`
}

// ValidateSignup checks every signup field. The phone number is parsed with
// the region resolved from Location or Address; a nil resolver parses it
// without a region.
func ValidateSignup(f SignupFields, resolver *location.Resolver) Errors {
	errs := Errors{}

	if blank(f.FullName) {
		errs["fullName"] = MsgRequired
	}

	if blank(f.Email) {
		errs["email"] = MsgRequired
	} else if !IsEmail(f.Email) {
		errs["email"] = MsgInvalidEmail
	}

	if blank(f.Password) {
		errs["password"] = MsgRequired
	} else if tooShort(f.Password) {
		errs["password"] = MsgPasswordTooShort
	}

	if blank(f.ConfirmPassword) {
		errs["confirmPassword"] = MsgRequired
	} else if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = MsgPasswordMismatch
	}

	if blank(f.Phone) {
		errs["phone"] = MsgRequired
	} else {
		region := ""
		if resolver != nil {
			region, _ = resolver.ResolveCountryCode(f.Location, f.Address)
		}
		if !IsValidPhone(f.Phone, region) {
			errs["phone"] = MsgInvalidPhone
		}
	}

	if blank(f.Address) {
		errs["address"] = MsgRequired
	}

	return errs
}

type LoginFields struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLogin checks presence and email shape only; credentials are never
// verified.
func ValidateLogin(f LoginFields) Errors {
	errs := Errors{}
	if blank(f.Email) {
		errs["email"] = MsgRequired
	} else if !IsEmail(f.Email) {
		errs["email"] = MsgInvalidEmail
	}
	if blank(f.Password) {
		errs["password"] = MsgRequired
	}
	return errs
}
