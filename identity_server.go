// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configs

// Environment variable keys for the identity server section.
const (
	IdentityServerURLEnvKey          = "IDENTITY_SERVER_URL"
	IdentityServerRealmEnvKey        = "IDENTITY_SERVER_REALM"
	IdentityServerAudienceEnvKey     = "IDENTITY_SERVER_AUDIENCE"
	IdentityServerIssuerEnvKey       = "IDENTITY_SERVER_ISSUER"
	IdentityServerClientIDEnvKey     = "IDENTITY_SERVER_CLIENT_ID"
	IdentityServerClientSecretEnvKey = "IDENTITY_SERVER_CLIENT_SECRET"
	IdentityServerGrantTypeEnvKey    = "IDENTITY_SERVER_GRANT_TYPE"
)

// IdentityServerConfigs holds identity provider settings used for token
// acquisition and validation.
type IdentityServerConfigs struct {
	// URL is the identity server base URL.
	// Env: IDENTITY_SERVER_URL (default "")
	URL string

	// Realm is the authentication realm.
	// Env: IDENTITY_SERVER_REALM (default "")
	Realm string

	// Audience is the expected token audience.
	// Env: IDENTITY_SERVER_AUDIENCE (default "")
	Audience string

	// Issuer is the expected token issuer.
	// Env: IDENTITY_SERVER_ISSUER (default "")
	Issuer string

	// ClientID identifies this application to the identity server.
	// Env: IDENTITY_SERVER_CLIENT_ID (default "")
	ClientID string

	// ClientSecret authenticates this application.
	// Env: IDENTITY_SERVER_CLIENT_SECRET (default "")
	ClientSecret string

	// GrantType is the OAuth2 grant used for token acquisition.
	// Env: IDENTITY_SERVER_GRANT_TYPE (default "client_credentials")
	GrantType string
}

// DefaultIdentityServer returns the identity server section with every
// field at its documented default.
func DefaultIdentityServer() IdentityServerConfigs {
	return IdentityServerConfigs{
		GrantType: "client_credentials",
	}
}

// NewIdentityServer resolves the identity server section from src.
func NewIdentityServer(src EnvSource) IdentityServerConfigs {
	cfg := DefaultIdentityServer()

	cfg.URL = resolveString(src, IdentityServerURLEnvKey, cfg.URL)
	cfg.Realm = resolveString(src, IdentityServerRealmEnvKey, cfg.Realm)
	cfg.Audience = resolveString(src, IdentityServerAudienceEnvKey, cfg.Audience)
	cfg.Issuer = resolveString(src, IdentityServerIssuerEnvKey, cfg.Issuer)
	cfg.ClientID = resolveString(src, IdentityServerClientIDEnvKey, cfg.ClientID)
	cfg.ClientSecret = resolveString(src, IdentityServerClientSecretEnvKey, cfg.ClientSecret)
	cfg.GrantType = resolveString(src, IdentityServerGrantTypeEnvKey, cfg.GrantType)

	return cfg
}
