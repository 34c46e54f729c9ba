package trace

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/bsviz/internal/search"
)

func TestRecord(t *testing.T) {
	run := search.Generate([]int{1, 3, 5, 7, 9, 11}, 7)
	rec := Record(run)

	if rec.Result != "found" {
		t.Errorf("result = %s, want found", rec.Result)
	}
	if len(rec.Steps) != run.Len() {
		t.Fatalf("expected %d steps, got %d", run.Len(), len(rec.Steps))
	}
	last := rec.Steps[len(rec.Steps)-1]
	if last.FoundIndex == nil || *last.FoundIndex != 3 {
		t.Errorf("found index = %v, want 3", last.FoundIndex)
	}
	if rec.Steps[0].FoundIndex != nil {
		t.Error("running step carries a found index")
	}
	if rec.Steps[0].Line != 2 || last.Line != 9 {
		t.Errorf("lines = %d..%d", rec.Steps[0].Line, last.Line)
	}
	// first midpoint misses low: 5 < 7 on the else-if branch
	if rec.Steps[3].Kind != "eliminate_left" || rec.Steps[3].Line != 11 {
		t.Errorf("step 3 = %s on line %d, want eliminate_left on 11", rec.Steps[3].Kind, rec.Steps[3].Line)
	}
	for i, s := range rec.Steps {
		if s.Final != (i == len(rec.Steps)-1) {
			t.Errorf("step %d final = %v", i, s.Final)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, search.Generate(nil, 3)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var rec RunRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec.Result != "not_found" || len(rec.Steps) != 2 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if !strings.Contains(buf.String(), `"data": []`) {
		t.Error("empty data should encode as an empty array")
	}
}

func TestWriteCSV(t *testing.T) {
	run := search.Generate([]int{2, 4, 6}, 5)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, run); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(rows) != run.Len()+1 {
		t.Fatalf("expected %d rows, got %d", run.Len()+1, len(rows))
	}
	if rows[0][0] != "step" {
		t.Errorf("unexpected header %v", rows[0])
	}
	final := rows[len(rows)-1]
	if final[1] != "not_found" || final[2] != "-1" {
		t.Errorf("unexpected final row %v", final)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, search.Generate([]int{1, 3, 5}, 3)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "STEP") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "Number 3 Found at Index 1!") {
		t.Errorf("missing found message: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 5 {
		t.Errorf("expected 5 lines, got %d", got)
	}
}

func TestPlot(t *testing.T) {
	run := search.Generate([]int{1, 2, 3, 4, 5, 6, 7, 8}, 8)
	if out := Plot(run, 40, 6); !strings.Contains(out, "search window size") {
		t.Errorf("plot missing caption: %q", out)
	}
}
