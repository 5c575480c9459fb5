package auth

import "fmt"

// DeployTokenAuthService validates a shared deploy token.
type DeployTokenAuthService struct {
	token string
}

func (s *DeployTokenAuthService) Validate(token string) (bool, error) {
	if s.token != token {
		return false, fmt.Errorf("deploy token is either missing or invalid")
	}
	return true, nil
}
