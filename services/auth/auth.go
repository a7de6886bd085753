package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"labdesk/api"
	"labdesk/session"
	"labdesk/utils"
)

// Service owns the sign-in and sign-out flows, feeding the process-wide
// session store that the API client draws its token from.
type Service struct {
	api    *api.Client
	store  *session.Store
	logger *zap.Logger
}

func NewService(client *api.Client, store *session.Store) *Service {
	return &Service{api: client, store: store, logger: utils.GetLogger()}
}

// Login authenticates and persists the resulting session. When the login
// response lacks profile fields the service falls back to /auth/me, then to
// the token's own claims, so the console always knows the operator's role.
func (s *Service) Login(ctx context.Context, email, password string) (*session.Session, error) {
	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := session.Session{
		Token: result.Token,
		Role:  result.User.Role,
		Name:  result.User.Name,
		Email: result.User.Email,
	}

	// The store must hold the token before /auth/me can authenticate.
	if err := s.store.Set(sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	if sess.Role == "" || sess.Name == "" || sess.Email == "" {
		if profile, err := s.api.Me(ctx); err == nil {
			if sess.Role == "" {
				sess.Role = profile.Role
			}
			if sess.Name == "" {
				sess.Name = profile.Name
			}
			if sess.Email == "" {
				sess.Email = profile.Email
			}
		} else {
			s.logger.Warn("failed to fetch profile after login", zap.Error(err))
		}
	}
	if sess.Role == "" {
		claims := session.ProfileFromToken(sess.Token)
		sess.Role = claims.Role
		if sess.Name == "" {
			sess.Name = claims.Name
		}
		if sess.Email == "" {
			sess.Email = claims.Email
		}
	}

	if err := s.store.Set(sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	s.logger.Info("signed in", zap.String("email", sess.Email), zap.String("role", sess.Role))
	return &sess, nil
}

// Logout tears the session down: in-memory state and the persisted token.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.logger.Info("signed out")
	return nil
}
