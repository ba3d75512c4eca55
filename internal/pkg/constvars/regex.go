package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[^\p{L}\p{N}\s]`
	RegexContainAtLeastOneUppercase   = `\p{Lu}`
	RegexContainAtLeastOneLowercase   = `\p{Ll}`
	RegexContainAtLeastOneDigit       = `\d`
	RegexSlug                         = `^[a-z0-9]+(?:-[a-z0-9]+)*$`
	// RegexBosniaPhoneNumber accepts +387 / 00387 / 0 prefixed fixed and mobile numbers,
	// after spaces, dashes, slashes and dots have been stripped.
	RegexBosniaPhoneNumber = `^(?:\+387|00387|0)[3-6]\d{6,8}$`
	RegexYouTubeVideoID    = `^[A-Za-z0-9_-]{11}$`
)

const (
	PasswordMinLength = 12
	SlugMaxLength     = 160
)
