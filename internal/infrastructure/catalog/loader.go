package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"insumos_limpeza/internal/domain/calculator"
	"insumos_limpeza/internal/domain/entities"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// itemOverride and fileCatalog mirror calculator.Catalog with pointer fields so
// a file only needs to list the values it changes.
type itemOverride struct {
	Nome          *string                   `yaml:"nome"`
	Categoria     *entities.ProductCategory `yaml:"categoria"`
	Unidade       *string                   `yaml:"unidade"`
	CustoUnitario *float64                  `yaml:"custo_unitario"`
	Minimo        *int                      `yaml:"minimo"`
}

type fileCatalog struct {
	PercentualDesconto *float64                `yaml:"percentual_desconto"`
	Itens              map[string]itemOverride `yaml:"itens"`
	Constantes         map[string]float64      `yaml:"constantes"`
}

// Load returns the default catalog when path is empty, otherwise the default
// merged with the YAML file at path.
func Load(path string) (calculator.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return calculator.DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return calculator.Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return calculator.Catalog{}, err
	}
	log.Printf("[catalog] loaded path=%s items=%d discount=%.2f", path, len(c.Itens), c.PercentualDesconto)
	return c, nil
}

// LoadFromEnv loads the catalog named by CATALOG_FILE.
func LoadFromEnv() (calculator.Catalog, error) {
	return Load(os.Getenv("CATALOG_FILE"))
}

// Parse decodes a YAML catalog document over the defaults.
func Parse(raw []byte) (calculator.Catalog, error) {
	var f fileCatalog
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return calculator.Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := calculator.DefaultCatalog()
	if f.PercentualDesconto != nil {
		c.PercentualDesconto = *f.PercentualDesconto
	}

	for key, o := range f.Itens {
		line := calculator.ProductLine(key)
		item, ok := c.Itens[line]
		if !ok {
			return calculator.Catalog{}, fmt.Errorf("%w: unknown product line %q", ErrInvalidCatalog, key)
		}
		if o.Nome != nil {
			item.Nome = *o.Nome
		}
		if o.Categoria != nil {
			item.Categoria = *o.Categoria
		}
		if o.Unidade != nil {
			item.Unidade = *o.Unidade
		}
		if o.CustoUnitario != nil {
			item.CustoUnitario = *o.CustoUnitario
		}
		if o.Minimo != nil {
			item.Minimo = *o.Minimo
		}
		c.Itens[line] = item
	}

	for key, v := range f.Constantes {
		field := constantField(&c.Constantes, key)
		if field == nil {
			return calculator.Catalog{}, fmt.Errorf("%w: unknown constant %q", ErrInvalidCatalog, key)
		}
		if v < 0 {
			return calculator.Catalog{}, fmt.Errorf("%w: constant %q must not be negative", ErrInvalidCatalog, key)
		}
		*field = v
	}

	if err := Validate(c); err != nil {
		return calculator.Catalog{}, err
	}
	return c, nil
}

// Validate rejects catalogs the calculator would price nonsensically.
func Validate(c calculator.Catalog) error {
	if c.PercentualDesconto < 0 || c.PercentualDesconto > 100 {
		return fmt.Errorf("%w: percentual_desconto must be between 0 and 100", ErrInvalidCatalog)
	}
	for _, line := range calculator.ProductLines {
		item := c.Item(line)
		if strings.TrimSpace(item.Nome) == "" {
			return fmt.Errorf("%w: %s has no name", ErrInvalidCatalog, line)
		}
		if item.CustoUnitario < 0 {
			return fmt.Errorf("%w: %s has negative price", ErrInvalidCatalog, line)
		}
		if item.Minimo < 0 {
			return fmt.Errorf("%w: %s has negative minimum", ErrInvalidCatalog, line)
		}
		if !item.Categoria.Valid() {
			return fmt.Errorf("%w: %s has unknown category %q", ErrInvalidCatalog, line, item.Categoria)
		}
	}
	for _, d := range divisors(c.Constantes) {
		if d.value <= 0 {
			return fmt.Errorf("%w: constant %q must be greater than zero", ErrInvalidCatalog, d.key)
		}
	}
	return nil
}

type divisor struct {
	key   string
	value float64
}

// divisors lists the package sizes and coverage rates the formulas divide by.
func divisors(k calculator.Constants) []divisor {
	return []divisor{
		{"folhas_por_fardo", k.FolhasPorFardo},
		{"ml_por_refil", k.MlPorRefil},
		{"rolos_por_fardo", k.RolosPorFardo},
		{"m2_por_litro_alcool", k.M2PorLitroAlcool},
		{"m2_por_litro_detergente", k.M2PorLitroDetergente},
		{"m2_por_litro_limpa_vidros", k.M2PorLitroLimpaVidros},
		{"sacos_por_pacote", k.SacosPorPacote},
		{"m2_por_pano_microfibra", k.M2PorPanoMicrofibra},
	}
}

func constantField(k *calculator.Constants, key string) *float64 {
	switch key {
	case "dias_uteis_mes":
		return &k.DiasUteisMes
	case "usos_por_funcionario_dia":
		return &k.UsosPorFuncionarioDia
	case "folhas_por_uso":
		return &k.FolhasPorUso
	case "folhas_por_fardo":
		return &k.FolhasPorFardo
	case "ml_sabonete_por_uso":
		return &k.MlSabonetePorUso
	case "ml_por_refil":
		return &k.MlPorRefil
	case "rolos_por_funcionario":
		return &k.RolosPorFuncionario
	case "rolos_por_fardo":
		return &k.RolosPorFardo
	case "litros_desinfetante_por_m2":
		return &k.LitrosDesinfetantePorM2
	case "m2_por_litro_alcool":
		return &k.M2PorLitroAlcool
	case "m2_por_litro_detergente":
		return &k.M2PorLitroDetergente
	case "m2_por_litro_limpa_vidros":
		return &k.M2PorLitroLimpaVidros
	case "sacos_por_banheiro_dia":
		return &k.SacosPorBanheiroDia
	case "sacos_por_pacote":
		return &k.SacosPorPacote
	case "m2_por_pano_microfibra":
		return &k.M2PorPanoMicrofibra
	}
	return nil
}
