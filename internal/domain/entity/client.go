package entity

// Client perfil de un cliente facturable (clients.toml). La clave de la
// tabla TOML es el identificador que se usa en generate y report.
type Client struct {
	Name    string `mapstructure:"name"`
	Contact string `mapstructure:"contact"`
	Email   string `mapstructure:"email"`
	Address string `mapstructure:"address"`
	City    string `mapstructure:"city"`
	State   string `mapstructure:"state"`
	Zip     string `mapstructure:"zip"`
	Country string `mapstructure:"country"`
}
