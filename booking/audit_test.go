package booking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestAudit_ConsistentSnapshot(t *testing.T) {
	s := Snapshot{
		Hotels: Records{
			"H1": raw(`{"hotel_id":"H1","name":"A","rooms_total":3,"rooms_available":1}`),
			"H2": raw(`{"hotel_id":"H2","name":"B","rooms_total":1,"rooms_available":1}`),
		},
		Customers: Records{"C1": raw(`{"customer_id":"C1","name":"Andrea"}`)},
		Reservations: Records{
			"R1": raw(`{"reservation_id":"R1","hotel_id":"H1","customer_id":"C1","status":"ACTIVE"}`),
			"R2": raw(`{"reservation_id":"R2","hotel_id":"H1","customer_id":"C1"}`),
			"R3": raw(`{"reservation_id":"R3","hotel_id":"H2","customer_id":"C1","status":"CANCELED"}`),
		},
	}
	assert.Empty(t, Audit(s))
}

func TestAudit_EmptySnapshot(t *testing.T) {
	assert.Empty(t, Audit(Snapshot{}))
}

func TestAudit_ReportsProblems(t *testing.T) {
	s := Snapshot{
		Hotels: Records{
			"H1": raw(`{"hotel_id":"H1","name":"A","rooms_total":2,"rooms_available":2}`),
			"H2": raw(`{"hotel_id":"H2","name":"B","rooms_total":1,"rooms_available":3}`),
			"HX": raw(`"not-a-dict"`),
		},
		Customers: Records{"CX": raw(`{"customer_id":"CX"}`)},
		Reservations: Records{
			"R1": raw(`{"reservation_id":"R1","hotel_id":"H1","customer_id":"C9","status":"ACTIVE"}`),
			"R2": raw(`{"reservation_id":"R2","hotel_id":"H9","customer_id":"CX","status":"CANCELED"}`),
			"R3": raw(`{"reservation_id":"R3","hotel_id":"HX","customer_id":"CX","status":"PENDING"}`),
		},
	}

	var got []string
	for _, f := range Audit(s) {
		got = append(got, string(f.Kind)+" "+f.ID)
	}
	assert.Equal(t, []string{
		"customer CX",
		"hotel H1",
		"hotel H2",
		"hotel H2",
		"hotel HX",
		"reservation R1",
		"reservation R2",
		"reservation R3",
	}, got)
}

func TestAudit_HeldRoomsMismatch(t *testing.T) {
	s := Snapshot{
		Hotels:    Records{"H1": raw(`{"hotel_id":"H1","name":"A","rooms_total":2,"rooms_available":0}`)},
		Customers: Records{"C1": raw(`{"customer_id":"C1","name":"Andrea"}`)},
		Reservations: Records{
			"R1": raw(`{"reservation_id":"R1","hotel_id":"H1","customer_id":"C1","status":"ACTIVE"}`),
		},
	}

	findings := Audit(s)
	assert.Equal(t, []AuditFinding{
		{Kind: KindHotel, ID: "H1", Problem: "2 rooms held but 1 active reservations"},
	}, findings)
	assert.Equal(t, "hotel H1: 2 rooms held but 1 active reservations", findings[0].String())
}

func TestAudit_UnknownReferences(t *testing.T) {
	s := Snapshot{
		Reservations: Records{
			"R1": raw(`{"reservation_id":"R1","hotel_id":"H9","customer_id":"C9","status":"CANCELED"}`),
		},
	}

	assert.Equal(t, []AuditFinding{
		{Kind: KindReservation, ID: "R1", Problem: `references unknown hotel "H9"`},
		{Kind: KindReservation, ID: "R1", Problem: `references unknown customer "C9"`},
	}, Audit(s))
}

func TestAudit_KeyMismatch(t *testing.T) {
	s := Snapshot{
		Hotels: Records{
			"H001": raw(`{"hotel_id":"H002","name":"A","rooms_total":1,"rooms_available":1}`),
		},
		Customers: Records{"C1": raw(`{"customer_id":"C2","name":"Andrea"}`)},
	}

	findings := Audit(s)
	if assert.Len(t, findings, 2) {
		assert.Equal(t, AuditFinding{Kind: KindCustomer, ID: "C1", Problem: `malformed record: id "C2" stored under key "C1"`}, findings[0])
		assert.Equal(t, AuditFinding{Kind: KindHotel, ID: "H001", Problem: `malformed record: id "H002" stored under key "H001"`}, findings[1])
	}
}
