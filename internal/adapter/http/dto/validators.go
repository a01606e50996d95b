package dto

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"tx-composer/internal/core/domain"
	"tx-composer/pkg/ss58"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeIDRe     = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	palletNameRe = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]{0,63}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("pallet_name", validatePalletName)
		_ = v.RegisterValidation("account_id", validateAccountID)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeIDRe.MatchString(fl.Field().String())
}

// validatePalletName accepts lowerCamel pallet and call names such as
// "balances" or "transferKeepAlive".
func validatePalletName(fl validator.FieldLevel) bool {
	return palletNameRe.MatchString(fl.Field().String())
}

func validateAccountID(fl validator.FieldLevel) bool {
	_, err := ParseAccountID(fl.Field().String())
	return err == nil
}

func accountIDFromAddress(address string) (domain.AccountID, error) {
	var id domain.AccountID
	pub, _, err := ss58.Decode(address)
	if err != nil {
		return id, err
	}
	if len(pub) != len(id) {
		return id, fmt.Errorf("address decodes to %d bytes, want %d", len(pub), len(id))
	}
	copy(id[:], pub)
	return id, nil
}

// SanitizeStruct trims whitespace from every exported string field of a
// struct pointer, skipping fields tagged sanitize:"-".
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || rt.Field(i).Tag.Get("sanitize") == "-" {
			continue
		}
		switch {
		case f.Kind() == reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case f.Kind() == reflect.Ptr && !f.IsNil() && f.Elem().Kind() == reflect.String:
			f.Elem().SetString(strings.TrimSpace(f.Elem().String()))
		}
	}
}
