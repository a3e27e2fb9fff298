package quota

import (
	"testing"

	"github.com/pytutor/pytutor_service/internal/usage"
)

func TestInspectMalformedKey(t *testing.T) {
	ins := NewInspector(usage.NewLedger(), 0)

	for _, key := range []string{"", "short", "123456789"} {
		t.Run("key_"+key, func(t *testing.T) {
			rep := ins.Inspect(key)
			if rep.Error != "Invalid API key format" {
				t.Errorf("Error = %q, want %q", rep.Error, "Invalid API key format")
			}
			if rep.Used != 0 {
				t.Errorf("Used = %d, want 0", rep.Used)
			}
			if rep.Limit != DefaultLimit {
				t.Errorf("Limit = %d, want %d", rep.Limit, DefaultLimit)
			}
			if rep.IsValid {
				t.Error("IsValid = true, want false")
			}
		})
	}
}

func TestInspectReportsLedgerUsage(t *testing.T) {
	ledger := usage.NewLedger()
	ledger.Record("a-valid-api-key", 1234)

	ins := NewInspector(ledger, 90000)
	rep := ins.Inspect("a-valid-api-key")

	if !rep.IsValid {
		t.Error("IsValid = false, want true")
	}
	if rep.Used != 1234 {
		t.Errorf("Used = %d, want 1234", rep.Used)
	}
	if rep.Limit != 90000 {
		t.Errorf("Limit = %d, want 90000", rep.Limit)
	}
	if rep.Error != "" {
		t.Errorf("Error = %q, want empty", rep.Error)
	}
}

func TestInspectUnseenValidKey(t *testing.T) {
	ins := NewInspector(usage.NewLedger(), 0)
	rep := ins.Inspect("never-used-key")
	if rep.Used != 0 || !rep.IsValid {
		t.Errorf("got {Used:%d IsValid:%v}, want {0 true}", rep.Used, rep.IsValid)
	}
}
