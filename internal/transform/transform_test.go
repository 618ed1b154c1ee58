package transform

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsuariosColumns(t *testing.T) {
	columns := Usuarios.Columns()

	require.Len(t, columns, 59)
	assert.Equal(t, Usuarios.NumColumns(), len(columns))
	assert.Equal(t, "id", columns[0])
	assert.Equal(t, "orgao_id", columns[1])
	assert.Equal(t, "bloqueado_ate", columns[56])
	assert.Equal(t, []string{"latitude", "longitude"}, columns[57:])

	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		assert.False(t, seen[c], "duplicate column %s", c)
		seen[c] = true
	}
}

func TestTransform(t *testing.T) {
	record := NewSourceRecord(1, map[string]string{
		"cpf":       "123.456.789-01",
		"matricula": "M100",
		"nome":      "João D'Ávila",
		"papel":     "atualizar",
		"email":     "  ",
		"latitude":  "-15,7801",
		"longitude": "oeste",
		"unknown":   "ignored",
	})

	stmt := Transform(record)

	require.Len(t, stmt.Literals, len(stmt.Columns))
	assert.Equal(t, Usuarios.Columns(), stmt.Columns)
	assert.Equal(t, IDFromTaxID, stmt.IDSource)
	assert.Equal(t, uuid.NewSHA1(Namespace, []byte("12345678901")), stmt.ID)
	assert.Equal(t, 1, stmt.Row)

	values := make(map[string]string, len(stmt.Columns))
	for i, c := range stmt.Columns {
		values[c] = stmt.Literals[i]
	}
	assert.Equal(t, "'"+stmt.ID.String()+"'", values["id"])
	assert.Equal(t, "'123.456.789-01'", values["cpf"])
	assert.Equal(t, "'M100'", values["matricula"])
	assert.Equal(t, "'João D''Ávila'", values["nome"])
	assert.Equal(t, "NULL", values["papel"])
	assert.Equal(t, "NULL", values["email"])
	assert.Equal(t, "NULL", values["orgao_id"])
	assert.Equal(t, "-15.7801", values["latitude"])
	assert.Equal(t, "NULL", values["longitude"])
	assert.NotContains(t, stmt.SQL(), "ignored")
}

func TestStatementSQL(t *testing.T) {
	tr := NewTransformer(Options{
		Table: TableSpec{
			Name:           "pessoas",
			IDColumn:       "id",
			ConflictColumn: "id",
			Fields:         []string{"nome"},
			GeoFields:      []string{"latitude"},
		},
	})

	stmt := tr.Transform(NewSourceRecord(1, map[string]string{
		"matricula": "M1",
		"nome":      "Ana",
		"latitude":  "1,5",
	}))

	want := "INSERT INTO pessoas (id, nome, latitude)\n" +
		"VALUES ('" + uuid.NewSHA1(Namespace, []byte("M1")).String() + "', 'Ana', 1.5)\n" +
		"ON CONFLICT (id) DO NOTHING;"
	assert.Equal(t, want, stmt.SQL())
	assert.Equal(t, want, stmt.String())
}

func TestTransformIsPure(t *testing.T) {
	fields := map[string]string{"cpf": "", "matricula": "M999", "nome": "X"}

	first := Transform(NewSourceRecord(2, fields)).SQL()
	second := Transform(NewSourceRecord(2, fields)).SQL()

	assert.Equal(t, first, second)
	assert.Equal(t, map[string]string{"cpf": "", "matricula": "M999", "nome": "X"}, fields)
}

func TestTransformRandomFallback(t *testing.T) {
	randomID := uuid.MustParse("aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee")
	tr := NewTransformer(Options{Random: func() uuid.UUID { return randomID }})

	stmt := tr.Transform(NewSourceRecord(1, map[string]string{"nome": "Sem Chave"}))

	assert.Equal(t, IDRandom, stmt.IDSource)
	assert.True(t, strings.HasPrefix(stmt.Literals[0], "'aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee'"))
	assert.Equal(t, "NULL", stmt.Literals[1])
}

func TestTransformEmptyRecord(t *testing.T) {
	stmt := Transform(NewSourceRecord(1, nil))

	require.Len(t, stmt.Literals, 59)
	for i, lit := range stmt.Literals[1:] {
		assert.Equal(t, "NULL", lit, "column %s", stmt.Columns[i+1])
	}
	assert.True(t, strings.HasSuffix(stmt.SQL(), "ON CONFLICT (id) DO NOTHING;"))
}
