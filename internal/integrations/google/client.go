package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	googleapi "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры OAuth клиента
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Client клиент входа через Google (OAuth 2.0 authorization code flow)
type Client struct {
	oauth            *oauth2.Config
	userinfoEndpoint string // пусто - боевой адрес googleapis.com
	log              Logger
}

// NewClient создает новый экземпляр клиента Google
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"openid",
				googleapi.UserinfoEmailScope,
				googleapi.UserinfoProfileScope,
			},
			Endpoint: googleoauth.Endpoint,
		},
		log: log,
	}
}

// AuthCodeURL возвращает адрес страницы согласия Google
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// FetchProfile обменивает код авторизации на токен и получает профиль пользователя
func (c *Client) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty authorization code", ErrExchange)
	}

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		c.log.Warn("Google code exchange failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrExchange, err)
	}

	opts := []option.ClientOption{option.WithTokenSource(c.oauth.TokenSource(ctx, token))}
	if c.userinfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.userinfoEndpoint))
	}

	svc, err := googleapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create userinfo service: %v", ErrInternal, err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		c.log.Error("Google userinfo request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUserinfo, err)
	}

	if info.Id == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: profile without id or email", ErrUserinfo)
	}
	if info.VerifiedEmail != nil && !*info.VerifiedEmail {
		return nil, ErrEmailNotVerified
	}

	return &Profile{
		Subject:  info.Id,
		Email:    info.Email,
		Name:     info.Name,
		Picture:  info.Picture,
		Verified: info.VerifiedEmail != nil && *info.VerifiedEmail,
	}, nil
}
