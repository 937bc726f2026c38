package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/utils"
	"github.com/cadetnet/dutylog-api/pkg/msgraph"
)

// ProfileResolver resolves a bearer credential to a verified profile. The
// identity provider does the actual credential validation.
type ProfileResolver interface {
	Me(ctx context.Context, authorization string) (msgraph.Profile, error)
}

// IdentityOptions configures the identity verification middleware.
type IdentityOptions struct {
	// RequiredDomain restricts access to verified emails carrying this
	// suffix. Empty disables the domain gate (the admin check route only
	// needs the verified address).
	RequiredDomain string
}

// VerifyIdentity verifies the bearer credential against the identity provider
// and stores the verified email on the request. Any verification failure maps
// to 401; downstream handlers only ever see an already-verified address.
func VerifyIdentity(resolver ProfileResolver, opts IdentityOptions, logger zerolog.Logger) fiber.Handler {
	log := logger.With().Str("component", "identity_middleware").Logger()
	domain := strings.ToLower(strings.TrimSpace(opts.RequiredDomain))

	return func(c *fiber.Ctx) error {
		authorization := strings.TrimSpace(c.Get("Authorization"))
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized user")
		}

		profile, err := resolver.Me(c.Context(), authorization)
		if err != nil {
			if !errors.Is(err, msgraph.ErrUnauthorized) {
				log.Warn().Err(err).Msg("identity verification failed")
			}
			return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized user")
		}

		mail := strings.TrimSpace(profile.Mail)
		if mail == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized user")
		}

		if domain != "" && !strings.HasSuffix(strings.ToLower(mail), domain) {
			return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized user")
		}

		c.Locals("verified_email", mail)

		return c.Next()
	}
}

// VerifiedEmail returns the email the identity middleware attached to the
// request, or an empty string when verification has not run.
func VerifiedEmail(c *fiber.Ctx) string {
	if value := c.Locals("verified_email"); value != nil {
		if email, ok := value.(string); ok {
			return email
		}
	}
	return ""
}
