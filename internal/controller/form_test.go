package controller

import (
	"context"
	"errors"
	"testing"
)

func TestFormCreateCycle(t *testing.T) {
	var form Form
	if form.State() != FormHidden {
		t.Fatalf("expected a new form to be hidden, got %s", form.State())
	}
	if form.State().Visible() {
		t.Error("hidden form must not be visible")
	}

	if err := form.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate failed: %v", err)
	}
	if form.State() != FormCreating {
		t.Errorf("expected creating, got %s", form.State())
	}
	if !form.State().Visible() {
		t.Error("creating form must be visible")
	}

	form.Close()
	if form.State() != FormHidden {
		t.Errorf("expected hidden after Close, got %s", form.State())
	}
}

func TestFormEditCycle(t *testing.T) {
	var form Form

	if err := form.BeginEdit(true); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	if form.State() != FormEditingAdmin {
		t.Errorf("expected editing-admin, got %s", form.State())
	}
	form.Close()

	if err := form.BeginEdit(false); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	if form.State() != FormEditingOwner {
		t.Errorf("expected editing-owner, got %s", form.State())
	}
	form.Close()
	if form.State() != FormHidden {
		t.Errorf("expected hidden after Close, got %s", form.State())
	}
}

func TestFormRejectsReentry(t *testing.T) {
	var form Form
	if err := form.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate failed: %v", err)
	}

	if err := form.BeginCreate(); !errors.Is(err, ErrFormBusy) {
		t.Errorf("expected ErrFormBusy, got %v", err)
	}
	if err := form.BeginEdit(true); !errors.Is(err, ErrFormBusy) {
		t.Errorf("expected ErrFormBusy, got %v", err)
	}
	if form.State() != FormCreating {
		t.Errorf("rejected transition must not change state, got %s", form.State())
	}
}

func TestBeginEditLoadsRecordFirst(t *testing.T) {
	rec := newRecorder(t)
	rec.responses["/getProjectById"] = `{"id":5,"name":"Relaunch","status":"IN_PROGRESS"}`

	projects := NewProjects(rec.client(), pmSession())
	var form Form

	project, err := projects.BeginEdit(context.Background(), &form, 5)
	if err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	if project.Name != "Relaunch" {
		t.Errorf("expected the loaded record, got %+v", project)
	}
	if form.State() != FormEditingAdmin {
		t.Errorf("expected editing-admin, got %s", form.State())
	}
}

func TestBeginEditAbortsOnLoadFailure(t *testing.T) {
	rec := newRecorder(t)
	rec.server.Close()

	projects := NewProjects(rec.client(), pmSession())
	var form Form

	if _, err := projects.BeginEdit(context.Background(), &form, 5); err == nil {
		t.Fatal("expected an error when the record cannot be loaded")
	}
	if form.State() != FormHidden {
		t.Errorf("form must stay hidden after a failed load, got %s", form.State())
	}
}

func TestTaskBeginEditPicksStateByRole(t *testing.T) {
	rec := newRecorder(t)
	rec.responses["/getTaskById"] = `{"id":9,"title":"Write docs","status":"TO_DO","employee":{"id":42}}`

	t.Run("pm gets full edit", func(t *testing.T) {
		var form Form
		if _, err := NewTasks(rec.client(), pmSession()).BeginEdit(context.Background(), &form, 9); err != nil {
			t.Fatalf("BeginEdit failed: %v", err)
		}
		if form.State() != FormEditingAdmin {
			t.Errorf("expected editing-admin, got %s", form.State())
		}
	})

	t.Run("assignee gets owner edit", func(t *testing.T) {
		var form Form
		if _, err := NewTasks(rec.client(), employeeSession()).BeginEdit(context.Background(), &form, 9); err != nil {
			t.Fatalf("BeginEdit failed: %v", err)
		}
		if form.State() != FormEditingOwner {
			t.Errorf("expected editing-owner, got %s", form.State())
		}
	})
}

func TestTaskBeginEditForbiddenForNonAssignee(t *testing.T) {
	rec := newRecorder(t)
	rec.responses["/getTaskById"] = `{"id":9,"title":"Write docs","status":"TO_DO","employee":{"id":41}}`

	var form Form
	_, err := NewTasks(rec.client(), employeeSession()).BeginEdit(context.Background(), &form, 9)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if form.State() != FormHidden {
		t.Errorf("form must stay hidden, got %s", form.State())
	}
}

func TestEmployeeBeginCreateForbidden(t *testing.T) {
	rec := newRecorder(t)
	sess := employeeSession()

	var form Form
	if err := NewProjects(rec.client(), sess).BeginCreate(&form); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for projects, got %v", err)
	}
	if err := NewTasks(rec.client(), sess).BeginCreate(&form); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for tasks, got %v", err)
	}
	if err := NewEmployees(rec.client(), sess).BeginCreate(&form); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for employees, got %v", err)
	}
	if form.State() != FormHidden {
		t.Errorf("form must stay hidden, got %s", form.State())
	}
	if len(rec.recorded()) != 0 {
		t.Errorf("expected no network calls, got %v", rec.paths())
	}
}

func TestBeginEditWhileFormOpen(t *testing.T) {
	rec := newRecorder(t)
	rec.responses["/getProjectById"] = `{"id":5,"name":"Relaunch"}`

	projects := NewProjects(rec.client(), pmSession())
	var form Form
	if err := form.BeginCreate(); err != nil {
		t.Fatalf("BeginCreate failed: %v", err)
	}

	if _, err := projects.BeginEdit(context.Background(), &form, 5); !errors.Is(err, ErrFormBusy) {
		t.Errorf("expected ErrFormBusy, got %v", err)
	}
	if form.State() != FormCreating {
		t.Errorf("expected the open form untouched, got %s", form.State())
	}
}
