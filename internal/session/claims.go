package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims extracts the user id and display name from the token payload.
//
// The client holds no signing secret, so the payload is decoded without
// signature verification; the server remains the authority on whether the
// token is actually accepted. A malformed token or one missing the expected
// id_user/name claims yields ErrDecode.
func Claims(token string) (Identity, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("%w: unexpected claims type", ErrDecode)
	}

	id, ok := mc["id_user"].(float64)
	if !ok {
		return Identity{}, fmt.Errorf("%w: missing id_user claim", ErrDecode)
	}

	name, ok := mc["name"].(string)
	if !ok {
		return Identity{}, fmt.Errorf("%w: missing name claim", ErrDecode)
	}

	return Identity{UserID: int(id), Name: name}, nil
}
