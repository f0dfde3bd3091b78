package forms

type ProfileFields struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func ValidateProfile(f ProfileFields) Errors {
	errs := Errors{}
	if blank(f.Name) {
		errs["name"] = MsgProfileNameRequired
	}
	if blank(f.Email) {
		errs["email"] = MsgProfileEmailRequired
	} else if !IsEmail(f.Email) {
		errs["email"] = MsgEnterValidEmail
	}
	if blank(f.Password) {
		errs["password"] = MsgProfilePasswordRequired
	} else if tooShort(f.Password) {
		errs["password"] = MsgPasswordTooShort
	}
	return errs
}

// ValidateResetEmail checks the address a reset link is requested for.
func ValidateResetEmail(email string) Errors {
	errs := Errors{}
	if blank(email) {
		errs["email"] = MsgResetEmailRequired
	} else if !IsEmail(email) {
		errs["email"] = MsgEnterValidEmail
	}
	return errs
}

type ResetFields struct {
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func ValidateReset(f ResetFields) Errors {
	errs := Errors{}
	if blank(f.NewPassword) {
		errs["newPassword"] = MsgNewPasswordRequired
	} else if tooShort(f.NewPassword) {
		errs["newPassword"] = MsgPasswordTooShort
	}
	if blank(f.ConfirmPassword) {
		errs["confirmPassword"] = MsgConfirmPasswordNeeded
	} else if f.ConfirmPassword != f.NewPassword {
		errs["confirmPassword"] = MsgPasswordMismatch
	}
	return errs
}
