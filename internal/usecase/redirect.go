package usecase

import "net/url"

// SignInPath is the sign-in page.
const SignInPath = "/signin"

// SignInLocation is the sign-in URL that returns the user to target afterwards.
func SignInLocation(target string) string {
	return SignInPath + "?" + url.Values{"redirect": {target}}.Encode()
}
