package validation

// Registration validates the createuser payload.
func Registration(email, userName, password string) Errors {
	var errs Errors
	Email("email", email, "Invalid value", &errs)
	MinLength("userName", userName, 2, "Enter a Valid Name", &errs)
	MinLength("password", password, 5, "Password must be 5 character long", &errs)
	return errs
}

// Login validates the login payload.
func Login(email, password string) Errors {
	var errs Errors
	Email("email", email, "Enter a valid email", &errs)
	Required("password", password, "Password cannot be blank", &errs)
	return errs
}
