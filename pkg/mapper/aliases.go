package mapper

import (
	"fmt"
	"os"
	"strings"

	"renovacampo/pkg/model"
	"renovacampo/pkg/sanitizer"

	"gopkg.in/yaml.v3"
)

// Attribute lists the form fields that can source one payload attribute,
// in priority order.
type Attribute struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

type AliasTable []Attribute

const (
	AttrName          = "name"
	AttrDescription   = "description"
	AttrTotalArea     = "totalArea"
	AttrAvailableArea = "availableArea"
	AttrType          = "type"
	AttrAddress       = "address"
	AttrGeolink       = "geolink"
	AttrLatitude      = "latitude"
	AttrLongitude     = "longitude"

	AttrCategory         = "category"
	AttrStartDate        = "startDate"
	AttrDuration         = "duration"
	AttrEstimatedEndDate = "estimatedEndDate"
	AttrPriority         = "priority"
	AttrEstimatedCosts   = "totalEstimatedCosts"
	AttrInvestment       = "totalInvestment"
	AttrROI              = "estimatedReturnOverInvestment"

	AttrTaxID      = "taxId"
	AttrEmail      = "email"
	AttrPhone      = "phone"
	AttrTotalFunds = "totalFunds"

	// Derived attributes that only show up in Result.Degraded.
	AttrCoordinates = "coordinates"
	AttrLocation    = "location"
)

var defaultAliases = map[model.EntityKind]AliasTable{
	model.KindProperty: {
		{Name: AttrName, Aliases: []string{"nome_propiedade", "nome_prop"}},
		{Name: AttrDescription, Aliases: []string{"ultimas_culturas", "obs_erosao"}},
		{Name: AttrTotalArea, Aliases: []string{"area_total"}},
		{Name: AttrAvailableArea, Aliases: []string{"area_disp"}},
		{Name: AttrType, Aliases: []string{"sit_registral"}},
		{Name: AttrAddress, Aliases: []string{"end_prop"}},
		{Name: AttrGeolink, Aliases: []string{"geolink"}},
		{Name: AttrLatitude, Aliases: []string{"latitude"}},
		{Name: AttrLongitude, Aliases: []string{"longitude"}},
	},
	model.KindProject: {
		{Name: AttrName, Aliases: []string{"titulo", "nomeProjeto", "nome"}},
		{Name: AttrCategory, Aliases: []string{"tipo", "categoria", "tipoProjeto"}},
		{Name: AttrDescription, Aliases: []string{"resumoProjeto", "descricao", "descricaoProjeto"}},
		{Name: AttrStartDate, Aliases: []string{"inicioPrev", "dataInicio"}},
		{Name: AttrDuration, Aliases: []string{"duracao"}},
		{Name: AttrEstimatedEndDate, Aliases: []string{"dataPrevisaoFim"}},
		{Name: AttrPriority, Aliases: []string{"prioridade"}},
		{Name: AttrEstimatedCosts, Aliases: []string{"custoTotal", "custoEstimado"}},
		{Name: AttrInvestment, Aliases: []string{"valorSolicitado", "investimentoNecessario"}},
		{Name: AttrROI, Aliases: []string{"retornoEstim", "retornoEstimado"}},
	},
	model.KindInvestor: {
		{Name: AttrTaxID, Aliases: []string{"cpfcnpj", "cpf", "cnpj"}},
		{Name: AttrName, Aliases: []string{"nome", "nomeCompleto", "razaoSocial"}},
		{Name: AttrEmail, Aliases: []string{"email"}},
		{Name: AttrPhone, Aliases: []string{"telefone", "celular"}},
		{Name: AttrAddress, Aliases: []string{"endereco"}},
		{Name: AttrTotalFunds, Aliases: []string{"valorMax", "valorMin"}},
		{Name: AttrDescription, Aliases: []string{"observacoesInvest", "descricao", "perfilInvestidor"}},
	},
}

// Aliases returns a copy of the built-in alias table for kind.
func Aliases(kind model.EntityKind) AliasTable {
	return defaultAliases[kind].clone()
}

// BaseFieldSet returns every form field the built-in table for kind
// recognizes, in table order.
func BaseFieldSet(kind model.EntityKind) []string {
	return defaultAliases[kind].Fields()
}

func (t AliasTable) Fields() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, attr := range t {
		for _, alias := range attr.Aliases {
			if _, ok := seen[alias]; ok {
				continue
			}
			seen[alias] = struct{}{}
			out = append(out, alias)
		}
	}
	return out
}

func (t AliasTable) lookup(attr string) []string {
	for _, a := range t {
		if a.Name == attr {
			return a.Aliases
		}
	}
	return nil
}

func (t AliasTable) clone() AliasTable {
	if t == nil {
		return nil
	}
	out := make(AliasTable, len(t))
	for i, a := range t {
		out[i] = Attribute{Name: a.Name, Aliases: append([]string(nil), a.Aliases...)}
	}
	return out
}

// withOverrides replaces the alias lists of the named attributes. Attribute
// order is kept from t.
func (t AliasTable) withOverrides(overrides map[string][]string) (AliasTable, error) {
	out := t.clone()
	for name, aliases := range overrides {
		idx := -1
		for i, a := range out {
			if a.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown attribute %q", name)
		}
		cleaned := sanitizer.SanitizeSlice(aliases, strings.TrimSpace)
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("attribute %q has no aliases", name)
		}
		out[idx].Aliases = cleaned
	}
	return out, nil
}

// AliasFile is the YAML layout accepted by LoadAliasFile:
//
//	property:
//	  name: [nome_propiedade, nome_prop, nome_fazenda]
//	investor:
//	  phone: [telefone, celular, whatsapp]
type AliasFile map[string]map[string][]string

// LoadAliasFile reads alias overrides from a YAML file and returns options
// that apply them on top of the built-in tables.
func LoadAliasFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}
	return ParseAliasOverrides(data)
}

func ParseAliasOverrides(data []byte) ([]Option, error) {
	var file AliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse alias file: %w", err)
	}

	var opts []Option
	for kindName, overrides := range file {
		kind, ok := model.ParseEntityKind(kindName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kindName)
		}
		table, err := defaultAliases[kind].withOverrides(overrides)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		opts = append(opts, WithAliases(kind, table))
	}
	return opts, nil
}
