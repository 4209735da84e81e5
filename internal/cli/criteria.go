package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aviref/mdq"
	"github.com/aviref/mdq/internal/dates"
	"github.com/aviref/mdq/internal/saved"
)

// queryFromCriteria translates a criteria snapshot into an executable query.
func queryFromCriteria(c saved.Criteria, scopes []mdq.Scope, limit int) (*mdq.Query, error) {
	b := mdq.NewBuilder()

	if c.Name != "" {
		b.NameLike(c.Name)
	}
	if c.Exact != "" {
		b.NameIs(c.Exact)
	}
	if c.Ext != "" {
		b.Extension(strings.TrimPrefix(c.Ext, "."))
	}
	if c.Type != "" {
		b.ContentType(c.Type)
	}
	if c.App {
		b.IsApp()
	}
	switch c.Dir {
	case "":
	case "yes":
		b.IsDir(true)
	case "no":
		b.IsDir(false)
	default:
		return nil, fmt.Errorf("invalid --dir value %q (use yes or no)", c.Dir)
	}
	if c.MinSize > 0 {
		b.Size(mdq.OpGte, c.MinSize)
	}
	if c.MaxSize > 0 {
		b.Size(mdq.OpLte, c.MaxSize)
	}
	if c.After != "" {
		t, err := dates.Parse(c.After, time.Now())
		if err != nil {
			return nil, fmt.Errorf("invalid --after value: %w", err)
		}
		b.ModifiedAfter(t)
	}
	if c.Before != "" {
		t, err := dates.Parse(c.Before, time.Now())
		if err != nil {
			return nil, fmt.Errorf("invalid --before value: %w", err)
		}
		b.ModifiedBefore(t)
	}
	for _, expr := range c.Where {
		key, op, value, err := parseWhere(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid --where value: %w", err)
		}
		b.Where(key, op, value)
	}

	return b.Build(scopes, limit)
}

var whereOps = map[string]mdq.Op{
	"==":          mdq.OpEq,
	"!=":          mdq.OpNeq,
	"<":           mdq.OpLt,
	">":           mdq.OpGt,
	"<=":          mdq.OpLte,
	">=":          mdq.OpGte,
	"contains":    mdq.OpContains,
	"begins-with": mdq.OpBeginsWith,
	"ends-with":   mdq.OpEndsWith,
}

// parseWhere splits a raw "key op value" comparison. The literal is typed
// by the key's registered domain, so kMDItemPixelWidth gets a number and
// kMDItemContentModificationDate a date.
func parseWhere(expr string) (mdq.Key, mdq.Op, mdq.Value, error) {
	parts := strings.SplitN(strings.TrimSpace(expr), " ", 3)
	if len(parts) != 3 {
		return "", 0, mdq.Value{}, fmt.Errorf("%q is not of the form \"key op value\"", expr)
	}
	key := mdq.Key(parts[0])
	op, ok := whereOps[parts[1]]
	if !ok {
		return "", 0, mdq.Value{}, fmt.Errorf("unknown operator %q", parts[1])
	}

	raw := strings.TrimSpace(parts[2])
	switch mdq.DomainOf(key) {
	case mdq.DomainNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", 0, mdq.Value{}, fmt.Errorf("%s needs a numeric literal, got %q", key, raw)
		}
		return key, op, mdq.NumberValue(n), nil
	case mdq.DomainDate:
		t, err := dates.Parse(raw, time.Now())
		if err != nil {
			return "", 0, mdq.Value{}, fmt.Errorf("%s needs a date literal: %w", key, err)
		}
		return key, op, mdq.DateValue(t), nil
	case mdq.DomainBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return "", 0, mdq.Value{}, fmt.Errorf("%s needs a boolean literal, got %q", key, raw)
		}
		return key, op, mdq.BoolValue(v), nil
	default:
		return key, op, mdq.StringValue(strings.Trim(raw, `"`)), nil
	}
}
