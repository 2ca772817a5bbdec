package utils

import (
	"fmt"
	"strings"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// ClerkUser is the subset of the Clerk user object the backend needs
type ClerkUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ImageURL       string `json:"image_url"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// Email returns the user's primary email address
func (u *ClerkUser) Email() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// DisplayName derives the display name from the profile, falling back to
// "User" when both name parts are empty.
func (u *ClerkUser) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return "User"
	}
	return name
}

// IdentityProvider fetches user profiles from the external identity source
type IdentityProvider interface {
	GetUser(userID string) (*ClerkUser, error)
}

// Clerk is the identity provider used by handlers. Tests swap in a stub.
var Clerk IdentityProvider = &clerkClient{}

type clerkClient struct{}

// GetUser fetches a user profile from the Clerk Backend API
func (cc *clerkClient) GetUser(userID string) (*ClerkUser, error) {
	var user ClerkUser

	client := resty.New()
	resp, err := client.R().
		SetAuthToken(config.AppConfig.ClerkSecretKey).
		SetResult(&user).
		Get(fmt.Sprintf("%s/users/%s", config.AppConfig.ClerkAPIURL, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clerk user: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("clerk API error: %s", resp.String())
	}

	return &user, nil
}
