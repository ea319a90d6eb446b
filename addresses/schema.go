package addresses

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/tranvictor/addressbook/common"
)

const roleTag = "role"

var (
	ErrInvalidSchema = errors.New("invalid address schema")
	ErrDuplicateRole = errors.New("duplicate role")

	addressType     = reflect.TypeOf(common.Address{})
	addressInfoType = reflect.TypeOf(common.AddressInfo{})
	rolePattern     = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// collectEntries flattens a network's address struct into its role map. The
// struct may embed other schema structs (Base); every other field must carry
// a role tag and be a common.Address or common.AddressInfo. Unset values are
// left out.
func collectEntries(v any) (map[Role]common.Entry, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("nil address struct: %w", ErrInvalidSchema)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct: %w", rv.Type(), ErrInvalidSchema)
	}

	entries := map[Role]common.Entry{}
	seen := map[Role]string{}
	if err := walkSchema(rv, "", entries, seen); err != nil {
		return nil, err
	}
	return entries, nil
}

func walkSchema(v reflect.Value, prefix string, entries map[Role]common.Entry, seen map[Role]string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		path := prefix + f.Name
		if !f.IsExported() {
			return fmt.Errorf("field %s is unexported: %w", path, ErrInvalidSchema)
		}

		tag, tagged := f.Tag.Lookup(roleTag)
		if !tagged {
			if f.Anonymous && f.Type.Kind() == reflect.Struct &&
				f.Type != addressType && f.Type != addressInfoType {
				if err := walkSchema(v.Field(i), path+".", entries, seen); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("field %s has no role tag: %w", path, ErrInvalidSchema)
		}

		if !rolePattern.MatchString(tag) {
			return fmt.Errorf("field %s has malformed role %q: %w", path, tag, ErrInvalidSchema)
		}
		role := Role(tag)
		if prev, dup := seen[role]; dup {
			return fmt.Errorf("%s declared by both %s and %s: %w", role, prev, path, ErrDuplicateRole)
		}
		seen[role] = path

		switch f.Type {
		case addressType:
			addr := v.Field(i).Interface().(common.Address)
			if addr.IsZero() {
				continue
			}
			entries[role] = common.Entry{Value: addr}
		case addressInfoType:
			info := v.Field(i).Interface().(common.AddressInfo)
			if info.IsZero() {
				if info.Type != "" {
					return fmt.Errorf("%s has a type but no address: %w", role, ErrInvalidSchema)
				}
				continue
			}
			if info.Type == "" {
				return fmt.Errorf("%s has an address but no type: %w", role, ErrInvalidSchema)
			}
			entries[role] = common.Entry{Value: info.Value, Type: info.Type}
		default:
			return fmt.Errorf("field %s has unsupported type %s: %w", path, f.Type, ErrInvalidSchema)
		}
	}
	return nil
}
