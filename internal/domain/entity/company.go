package entity

// Company perfil de la empresa emisora (config.toml, sección [company]).
type Company struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	City    string `mapstructure:"city"`
	State   string `mapstructure:"state"`
	Zip     string `mapstructure:"zip"`
	Country string `mapstructure:"country"`
	Email   string `mapstructure:"email"`
	Phone   string `mapstructure:"phone"`
	TaxID   string `mapstructure:"tax_id"`
}
