package google

// Profile профиль пользователя Google
type Profile struct {
	Subject  string // стабильный идентификатор аккаунта
	Email    string
	Name     string
	Picture  string
	Verified bool
}
