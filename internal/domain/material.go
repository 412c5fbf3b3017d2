package domain

// Materiais aceitos no cadastro de itens recicláveis, na ordem exibida no formulário
var materials = []string{
	"Ferro",
	"Alumínio",
	"Cobre",
	"Bronze",
	"Latão",
	"Aço Inox",
	"Chumbo",
	"Zinco",
	"Níquel",
	"Outros Metais",
}

// Materials retorna uma cópia da lista de materiais
func Materials() []string {
	out := make([]string, len(materials))
	copy(out, materials)
	return out
}

func IsValidMaterial(material string) bool {
	for _, m := range materials {
		if m == material {
			return true
		}
	}
	return false
}
