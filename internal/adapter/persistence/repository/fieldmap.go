package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"mecanica_oficina/internal/domain/entities"
)

var ErrUnmappedField = errors.New("field has no remote counterpart")

// FieldMap translates record keys between the internal camelCase names and the
// snake_case column names of the remote store. It is a pure, invertible table;
// nested maps cover embedded objects and lists of objects.
type FieldMap struct {
	name     string
	toWire   map[string]string
	toDomain map[string]string
	nested   map[string]*FieldMap
}

// NewFieldMap builds a map from domain→wire pairs. Both sides must be unique.
func NewFieldMap(name string, pairs map[string]string, nested map[string]*FieldMap) (*FieldMap, error) {
	m := &FieldMap{
		name:     name,
		toWire:   make(map[string]string, len(pairs)),
		toDomain: make(map[string]string, len(pairs)),
		nested:   nested,
	}
	for domain, wire := range pairs {
		if domain == "" || wire == "" {
			return nil, fmt.Errorf("%s: empty field name in pair %q=%q", name, domain, wire)
		}
		if prev, dup := m.toDomain[wire]; dup {
			return nil, fmt.Errorf("%s: wire name %q used by both %q and %q", name, wire, prev, domain)
		}
		m.toWire[domain] = wire
		m.toDomain[wire] = domain
	}
	for domain := range nested {
		if _, ok := m.toWire[domain]; !ok {
			return nil, fmt.Errorf("%s: nested map for unmapped field %q", name, domain)
		}
	}
	return m, nil
}

func mustFieldMap(name string, pairs map[string]string, nested map[string]*FieldMap) *FieldMap {
	m, err := NewFieldMap(name, pairs, nested)
	if err != nil {
		panic(err)
	}
	return m
}

var (
	LineItemFields = mustFieldMap("line_item", map[string]string{
		"kind":        "kind",
		"description": "description",
		"partNumber":  "part_number",
		"quantity":    "quantity",
		"unitPrice":   "unit_price",
		"hours":       "hours",
	}, nil)

	InvoiceFields = mustFieldMap("invoice", map[string]string{
		"total":         "total",
		"paymentId":     "payment_id",
		"paymentStatus": "payment_status",
		"invoicedAt":    "invoiced_at",
	}, nil)

	RepairOrderFields = mustFieldMap("repair_order", map[string]string{
		"id":           "id",
		"status":       "status",
		"customerName": "customer_name",
		"vehicle":      "vehicle",
		"complaint":    "complaint",
		"technicianId": "technician_id",
		"lineItems":    "line_items",
		"invoice":      "invoice",
		"createdAt":    "created_at",
		"updatedAt":    "updated_at",
	}, map[string]*FieldMap{
		"lineItems": LineItemFields,
		"invoice":   InvoiceFields,
	})

	PartFields = mustFieldMap("part", map[string]string{
		"partNumber":     "part_number",
		"description":    "description",
		"quantityOnHand": "quantity_on_hand",
		"reorderPoint":   "reorder_point",
	}, nil)
)

// ValidateFieldMaps checks that every json field of the persisted entities has
// exactly one remote counterpart.
func ValidateFieldMaps() error {
	return errors.Join(
		RepairOrderFields.Validate(entities.RepairOrder{}),
		LineItemFields.Validate(entities.LineItem{}),
		InvoiceFields.Validate(entities.Invoice{}),
		PartFields.Validate(entities.Part{}),
	)
}

// Validate compares the map against the json-tagged fields of sample.
func (m *FieldMap) Validate(sample any) error {
	t := reflect.TypeOf(sample)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%s: validate needs a struct, got %s", m.name, t)
	}

	seen := make(map[string]bool, t.NumField())
	var errs []error
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "-" {
			continue
		}
		seen[name] = true
		if _, ok := m.toWire[name]; !ok {
			errs = append(errs, fmt.Errorf("%s.%s: %w", m.name, name, ErrUnmappedField))
		}
	}
	for domain := range m.toWire {
		if !seen[domain] {
			errs = append(errs, fmt.Errorf("%s: mapped field %q does not exist on %s", m.name, domain, t.Name()))
		}
	}
	return errors.Join(errs...)
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func (m *FieldMap) WireName(domain string) (string, bool) {
	w, ok := m.toWire[domain]
	return w, ok
}

func (m *FieldMap) DomainName(wire string) (string, bool) {
	d, ok := m.toDomain[wire]
	return d, ok
}

// ToWire renames the keys of a domain document. Unknown keys are an error.
func (m *FieldMap) ToWire(doc map[string]any) (map[string]any, error) {
	return m.rename(doc, true)
}

// ToDomain renames the keys of a remote document. Unknown keys are an error.
func (m *FieldMap) ToDomain(doc map[string]any) (map[string]any, error) {
	return m.rename(doc, false)
}

func (m *FieldMap) rename(doc map[string]any, toWire bool) (map[string]any, error) {
	table := m.toDomain
	if toWire {
		table = m.toWire
	}
	out := make(map[string]any, len(doc))
	for _, key := range sortedKeys(doc) {
		target, ok := table[key]
		if !ok {
			return nil, fmt.Errorf("%s.%s: %w", m.name, key, ErrUnmappedField)
		}
		domainKey := key
		if !toWire {
			domainKey = target
		}
		v := doc[key]
		if sub, ok := m.nested[domainKey]; ok && v != nil {
			converted, err := sub.renameValue(v, toWire)
			if err != nil {
				return nil, err
			}
			v = converted
		}
		out[target] = v
	}
	return out, nil
}

func (m *FieldMap) renameValue(v any, toWire bool) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		return m.rename(val, toWire)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			converted, err := m.renameValue(item, toWire)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: cannot translate value of type %T", m.name, v)
	}
}

func sortedKeys(doc map[string]any) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toDocument encodes an entity into a generic document keyed by its json names.
func toDocument(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// fromDocument decodes a document keyed by json names into out.
func fromDocument(doc map[string]any, out any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
