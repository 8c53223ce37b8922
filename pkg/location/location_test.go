package location

import "testing"

func TestGeneric(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    Location
	}{
		{name: "city dash state", address: "Uberlândia - MG", want: Location{City: "Uberlândia", State: "MG", Parsed: true}},
		{name: "comma separated", address: "Rua A, 100, Campinas/SP", want: Location{City: "Rua A", State: "SP", Parsed: true}},
		{name: "lower case state", address: "Goiânia, go", want: Location{City: "Goiânia", State: "GO", Parsed: true}},
		{name: "long last segment truncated", address: "Fazenda Boa Vista, Minas Gerais", want: Location{City: "Fazenda Boa Vista", State: "MI", Parsed: true}},
		{name: "no delimiter", address: "Goiania", want: Location{City: "Goiania"}},
		{name: "no delimiter keeps spacing", address: " Goiania ", want: Location{City: " Goiania "}},
		{name: "empty", address: "", want: Location{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generic.Decompose(tt.address)
			if got != tt.want {
				t.Errorf("Generic.Decompose(%q) = %+v, want %+v", tt.address, got, tt.want)
			}
		})
	}
}

func TestInvestor(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    Location
	}{
		{name: "city dash state", address: "Uberlândia - MG", want: Location{City: "Uberlândia", State: "MG", Parsed: true}},
		{name: "street then city", address: "Rua das Flores, 123, Belo Horizonte/mg", want: Location{City: "Belo Horizonte", State: "MG", Parsed: true}},
		{name: "trailing whitespace", address: "Campinas, SP  ", want: Location{City: "Campinas", State: "SP", Parsed: true}},
		{name: "full state name rejected", address: "Rua X, 100, Minas Gerais", want: Location{City: "Rua X, 100, Minas Gerais"}},
		{name: "two character fallback", address: "Rua 5, 12", want: Location{City: "Rua 5", State: "12", Parsed: true}},
		{name: "no delimiter", address: " Brasília DF ", want: Location{City: "Brasília DF"}},
		{name: "empty", address: "   ", want: Location{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Investor.Decompose(tt.address)
			if got != tt.want {
				t.Errorf("Investor.Decompose(%q) = %+v, want %+v", tt.address, got, tt.want)
			}
		})
	}
}

func TestStrategiesDiffer(t *testing.T) {
	const address = "Fazenda Boa Vista, Minas Gerais"

	if got := Generic.Decompose(address).State; got != "MI" {
		t.Errorf("Generic state = %q, want MI", got)
	}
	if got := Investor.Decompose(address).State; got != "" {
		t.Errorf("Investor state = %q, want empty", got)
	}
}

func TestParse(t *testing.T) {
	if got := Parse("Uberlândia - MG"); got.City != "Uberlândia" || got.State != "MG" {
		t.Errorf("Parse() = %+v", got)
	}
}

func TestByName(t *testing.T) {
	if d, ok := ByName("Investor"); !ok || d.Decompose("Campinas - SP").City != "Campinas" {
		t.Error("ByName(Investor) did not resolve")
	}
	if _, ok := ByName(StrategyGeneric); !ok {
		t.Error("ByName(generic) did not resolve")
	}
	if _, ok := ByName("geocoder"); ok {
		t.Error("ByName accepted an unknown strategy")
	}
}
