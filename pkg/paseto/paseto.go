package pasetotoken

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

type Config struct {
	Mode Mode

	Issuer   string
	Audience string

	AccessTTL  time.Duration
	RefreshTTL time.Duration

	Implicit []byte
}

type Manager struct {
	cfg   Config
	keys  Keys
	parse paseto.Parser
}

func New(cfg Config, keys Keys) (*Manager, error) {
	if cfg.Mode != keys.Mode {
		return nil, ErrConfig{Msg: "cfg.Mode must match keys.Mode"}
	}
	if cfg.Issuer == "" {
		return nil, ErrConfig{Msg: "Issuer is required"}
	}
	if cfg.Audience == "" {
		return nil, ErrConfig{Msg: "Audience is required"}
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 30 * 24 * time.Hour
	}

	p := paseto.NewParser()
	p.AddRule(paseto.IssuedBy(cfg.Issuer))
	p.AddRule(paseto.ForAudience(cfg.Audience))
	p.AddRule(paseto.NotExpired())
	p.AddRule(paseto.ValidAt(time.Now()))

	return &Manager{cfg: cfg, keys: keys, parse: p}, nil
}

func (m *Manager) IssueAccess(doctorID uuid.UUID, sessionID *uuid.UUID) (string, error) {
	return m.issue(TokenTypeAccess, doctorID, sessionID, m.cfg.AccessTTL)
}

func (m *Manager) IssueRefresh(doctorID uuid.UUID, sessionID *uuid.UUID) (string, error) {
	return m.issue(TokenTypeRefresh, doctorID, sessionID, m.cfg.RefreshTTL)
}

func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	var (
		tok *paseto.Token
		err error
	)

	switch m.cfg.Mode {
	case ModeLocal:
		if m.keys.Symmetric == nil {
			return nil, ErrConfig{Msg: "missing symmetric key"}
		}
		tok, err = m.parse.ParseV4Local(*m.keys.Symmetric, tokenStr, m.cfg.Implicit)
	case ModePublic:
		if m.keys.Public == nil {
			return nil, ErrConfig{Msg: "missing public key"}
		}
		tok, err = m.parse.ParseV4Public(*m.keys.Public, tokenStr, m.cfg.Implicit)
	default:
		return nil, ErrConfig{Msg: "unknown mode"}
	}

	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	claims, err := extractClaims(tok, m.cfg.Issuer, m.cfg.Audience)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	return claims, nil
}

func (m *Manager) issue(tt TokenType, doctorID uuid.UUID, sessionID *uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()

	tok := paseto.NewToken()
	tok.SetIssuer(m.cfg.Issuer)
	tok.SetAudience(m.cfg.Audience)

	tok.SetJti(randHex(16))
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(ttl))
	tok.SetSubject(doctorID.String())

	tok.SetString("typ", string(tt))
	tok.SetString("uid", doctorID.String())
	if sessionID != nil {
		tok.SetString("sid", sessionID.String())
	}

	switch m.cfg.Mode {
	case ModeLocal:
		if m.keys.Symmetric == nil {
			return "", ErrConfig{Msg: "missing symmetric key"}
		}
		return tok.V4Encrypt(*m.keys.Symmetric, m.cfg.Implicit), nil

	case ModePublic:
		if m.keys.Secret == nil {
			return "", ErrConfig{Msg: "missing secret key"}
		}
		return tok.V4Sign(*m.keys.Secret, m.cfg.Implicit), nil

	default:
		return "", ErrConfig{Msg: "unknown mode"}
	}
}

func randHex(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func extractClaims(tok *paseto.Token, iss, aud string) (*Claims, error) {
	jti, err := tok.GetJti()
	if err != nil {
		return nil, err
	}

	sub, err := tok.GetSubject()
	if err != nil {
		return nil, err
	}

	iat, err := tok.GetIssuedAt()
	if err != nil {
		return nil, err
	}

	nbf, err := tok.GetNotBefore()
	if err != nil {
		return nil, err
	}

	exp, err := tok.GetExpiration()
	if err != nil {
		return nil, err
	}

	out := &Claims{
		Issuer:    iss,
		Audience:  aud,
		TokenID:   jti,
		Subject:   sub,
		IssuedAt:  iat,
		NotBefore: nbf,
		ExpiresAt: exp,
	}

	typ, err := tok.GetString("typ")
	if err != nil {
		return nil, err
	}
	out.Type = TokenType(typ)

	uidStr, err := tok.GetString("uid")
	if err != nil {
		return nil, err
	}
	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return nil, err
	}
	out.DoctorID = uid

	// sid is optional
	if sidStr, err := tok.GetString("sid"); err == nil {
		sid, err := uuid.Parse(sidStr)
		if err != nil {
			return nil, err
		}
		out.SessionID = &sid
	}

	return out, nil
}
