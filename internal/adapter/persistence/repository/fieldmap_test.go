package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFieldMaps(t *testing.T) {
	require.NoError(t, ValidateFieldMaps())
}

func TestFieldMap_Validate_DetectsGaps(t *testing.T) {
	type sample struct {
		ID       string `json:"id"`
		NewField string `json:"newField"`
		Skipped  string `json:"-"`
	}
	m, err := NewFieldMap("sample", map[string]string{"id": "id", "stale": "stale"}, nil)
	require.NoError(t, err)

	err = m.Validate(sample{})
	require.ErrorIs(t, err, ErrUnmappedField)
	require.ErrorContains(t, err, "newField")
	require.ErrorContains(t, err, "stale")
}

func TestNewFieldMap_RejectsDuplicateWireNames(t *testing.T) {
	_, err := NewFieldMap("dup", map[string]string{"a": "x", "b": "x"}, nil)
	require.Error(t, err)

	_, err = NewFieldMap("nested", map[string]string{"a": "a"}, map[string]*FieldMap{"b": LineItemFields})
	require.Error(t, err)
}

func TestFieldMap_IsInvertible(t *testing.T) {
	for _, m := range []*FieldMap{RepairOrderFields, LineItemFields, InvoiceFields, PartFields} {
		for domain, wire := range m.toWire {
			back, ok := m.DomainName(wire)
			require.True(t, ok, "%s: %s", m.name, wire)
			require.Equal(t, domain, back)
		}
		require.Len(t, m.toDomain, len(m.toWire))
	}
}

func TestFieldMap_TranslatesNestedDocuments(t *testing.T) {
	doc := map[string]any{
		"id":           "RO-1",
		"customerName": "Ana",
		"lineItems": []any{
			map[string]any{"kind": "part", "partNumber": "ENG-001", "unitPrice": 19.9},
		},
		"invoice": map[string]any{"paymentId": "pay-1", "invoicedAt": "2026-03-01T09:00:00Z"},
	}

	wire, err := RepairOrderFields.ToWire(doc)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"id":            "RO-1",
		"customer_name": "Ana",
		"line_items": []any{
			map[string]any{"kind": "part", "part_number": "ENG-001", "unit_price": 19.9},
		},
		"invoice": map[string]any{"payment_id": "pay-1", "invoiced_at": "2026-03-01T09:00:00Z"},
	}, wire)

	back, err := RepairOrderFields.ToDomain(wire)
	require.NoError(t, err)
	require.Equal(t, doc, back)
}

func TestFieldMap_UnknownKey(t *testing.T) {
	_, err := PartFields.ToWire(map[string]any{"partNumber": "A", "color": "red"})
	require.ErrorIs(t, err, ErrUnmappedField)

	_, err = PartFields.ToDomain(map[string]any{"partNumber": "A"})
	require.ErrorIs(t, err, ErrUnmappedField)
}
