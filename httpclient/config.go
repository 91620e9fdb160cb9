package httpclient

// Default connection parameters.
const (
	// DefaultUserAgent identifies the client when no user agent is configured.
	DefaultUserAgent = "vsc-rest-client"
	// DefaultTokenType is the authorization scheme used for token
	// authentication. Set TokenType to "Bearer" for OAuth-style APIs.
	DefaultTokenType = "Token"
)

// Config is the connection configuration for a Client. It is copied at
// construction and never modified afterwards.
type Config struct {
	// BaseURL is the root of the REST API, e.g. "https://api.example.com".
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Username enables authentication. A username requires exactly one of
	// Password or Token.
	Username string `yaml:"username" mapstructure:"username"`

	// Password is used for HTTP Basic authentication. Mutually exclusive
	// with Token.
	Password string `yaml:"password" mapstructure:"password"`

	// Token is used for token authentication ("<TokenType> <Token>").
	Token string `yaml:"token" mapstructure:"token"`

	// TokenType is the authorization scheme for Token. Defaults to "Token".
	TokenType string `yaml:"token_type" mapstructure:"token_type"`

	// UserAgent is sent with every request. Defaults to DefaultUserAgent.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// AppendSlash appends a trailing slash to request paths that lack one,
	// for APIs that insist on it.
	AppendSlash bool `yaml:"append_slash" mapstructure:"append_slash"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.TokenType == "" {
		c.TokenType = DefaultTokenType
	}
}

// Validate checks field constraints and the credential invariant:
// a username requires exactly one of password or token.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if c.Username != "" && c.Password == "" && c.Token == "" {
		return &ConfigError{
			Field:   "username",
			Message: "a password or token is required to authenticate as " + c.Username,
		}
	}
	if c.Password != "" && c.Token != "" {
		return &ConfigError{
			Field:   "token",
			Message: "password and token authentication are mutually exclusive",
		}
	}
	return nil
}
