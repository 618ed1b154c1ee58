package transform

// TableSpec describes the target table statements are rendered for.
// The identifier column is always emitted first, followed by Fields in order
// and then GeoFields in order.
type TableSpec struct {
	Name           string
	IDColumn       string
	ConflictColumn string
	Fields         []string
	GeoFields      []string
}

// Usuarios is the users table the migration artifact is applied against
var Usuarios = TableSpec{
	Name:           "usuarios",
	IDColumn:       "id",
	ConflictColumn: "id",
	Fields: []string{
		"orgao_id", "setor_id", "papel", "nome", "matricula", "vinculo_funcional", "cpf", "pis_pasep",
		"sexo", "estado_civil", "data_nascimento", "pai", "mae", "rg", "tipo_rg", "orgao_expedidor", "uf_rg",
		"expedicao_rg", "cidade_nascimento", "uf_nascimento", "tipo_sanguineo", "raca_cor", "pne", "tipo_vinculo",
		"categoria", "regime_juridico", "regime_previdenciario", "evento_tipo", "forma_provimento", "codigo_cargo",
		"cargo", "escolaridade_cargo", "escolaridade_servidor", "formacao_profissional_1", "formacao_profissional_2",
		"jornada", "nivel_referencia", "comissao_funcao", "data_inicio_comissao", "telefone", "endereco",
		"numero_endereco", "complemento_endereco", "bairro_endereco", "cidade_endereco", "uf_endereco", "cep_endereco",
		"email", "senha", "senha_alterada", "usuario_ativo", "ultimo_login", "tentativas_login",
		"data_criacao", "data_atualizacao", "bloqueado_ate",
	},
	GeoFields: []string{"latitude", "longitude"},
}

// Columns returns the full emitted column list
func (t TableSpec) Columns() []string {
	columns := make([]string, 0, t.NumColumns())
	columns = append(columns, t.IDColumn)
	columns = append(columns, t.Fields...)
	columns = append(columns, t.GeoFields...)
	return columns
}

// NumColumns returns the number of emitted columns
func (t TableSpec) NumColumns() int {
	return 1 + len(t.Fields) + len(t.GeoFields)
}
