// file: internals/features/finance/kas/service/state_machine_test.go
package service

import (
	"errors"
	"testing"

	"lingkunganku_backend/internals/constants"
	model "lingkunganku_backend/internals/features/finance/kas/model"
)

func pendingTransaksi() *model.KasTransaksiModel {
	return &model.KasTransaksiModel{
		KasTransaksiFund:           model.KasFundLingkungan,
		KasTransaksiApprovalStatus: model.ApprovalStatusPending,
	}
}

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name    string
		status  model.ApprovalStatus
		locked  bool
		role    string
		wantErr error
	}{
		{"pending bisa diedit", model.ApprovalStatusPending, false, constants.RoleBendahara, nil},
		{"rejected bisa diedit", model.ApprovalStatusRejected, false, constants.RoleBendahara, nil},
		{"approved terkunci", model.ApprovalStatusApproved, false, constants.RoleBendahara, ErrTransaksiTerkunci},
		{"locked terkunci", model.ApprovalStatusPending, true, constants.RoleBendahara, ErrTransaksiTerkunci},
		{"super user menembus approved", model.ApprovalStatusApproved, true, constants.RoleSuperUser, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := pendingTransaksi()
			tr.KasTransaksiApprovalStatus = tt.status
			tr.KasTransaksiLocked = tt.locked
			if err := CanEdit(tr, tt.role); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanEdit = %v, mau %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name    string
		status  model.ApprovalStatus
		locked  bool
		role    string
		wantErr error
	}{
		{"pending bisa dihapus", model.ApprovalStatusPending, false, constants.RoleBendahara, nil},
		{"approved tidak bisa dihapus", model.ApprovalStatusApproved, false, constants.RoleBendahara, ErrHapusNonPending},
		{"rejected tidak bisa dihapus", model.ApprovalStatusRejected, false, constants.RoleBendahara, ErrHapusNonPending},
		{"locked tidak bisa dihapus", model.ApprovalStatusPending, true, constants.RoleBendahara, ErrTransaksiTerkunci},
		{"approved tetap bukan pending untuk super user", model.ApprovalStatusApproved, false, constants.RoleSuperUser, ErrHapusNonPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := pendingTransaksi()
			tr.KasTransaksiApprovalStatus = tt.status
			tr.KasTransaksiLocked = tt.locked
			if err := CanDelete(tr, tt.role); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanDelete = %v, mau %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEditTransition(t *testing.T) {
	for _, status := range []model.ApprovalStatus{model.ApprovalStatusApproved, model.ApprovalStatusRejected} {
		tr := pendingTransaksi()
		tr.KasTransaksiApprovalStatus = status
		ApplyEditTransition(tr)
		if tr.KasTransaksiApprovalStatus != model.ApprovalStatusPending {
			t.Errorf("%s setelah edit: status = %s, mau pending", status, tr.KasTransaksiApprovalStatus)
		}
	}

	tr := pendingTransaksi()
	ApplyEditTransition(tr)
	if tr.KasTransaksiApprovalStatus != model.ApprovalStatusPending {
		t.Errorf("pending berubah jadi %s", tr.KasTransaksiApprovalStatus)
	}
}

func TestApproveReject(t *testing.T) {
	// bendahara mencatat tapi tidak berwenang menyetujui
	tr := pendingTransaksi()
	if err := Approve(tr, constants.RoleBendahara); !errors.Is(err, ErrTidakBerwenang) {
		t.Fatalf("bendahara approve = %v, mau ErrTidakBerwenang", err)
	}
	if tr.KasTransaksiApprovalStatus != model.ApprovalStatusPending {
		t.Fatalf("record berubah padahal transisi gagal: %s", tr.KasTransaksiApprovalStatus)
	}

	if err := Approve(tr, constants.RoleKetua); err != nil {
		t.Fatalf("ketua approve = %v", err)
	}
	if tr.KasTransaksiApprovalStatus != model.ApprovalStatusApproved {
		t.Fatalf("status = %s, mau approved", tr.KasTransaksiApprovalStatus)
	}

	// approved tidak bisa di-approve/reject lagi
	if err := Approve(tr, constants.RoleKetua); !errors.Is(err, ErrBukanPending) {
		t.Errorf("approve ulang = %v, mau ErrBukanPending", err)
	}
	if err := Reject(tr, constants.RoleKetua); !errors.Is(err, ErrBukanPending) {
		t.Errorf("reject approved = %v, mau ErrBukanPending", err)
	}

	tr2 := pendingTransaksi()
	if err := Reject(tr2, constants.RoleWakilKetua); err != nil {
		t.Fatalf("wakil ketua reject = %v", err)
	}
	if tr2.KasTransaksiApprovalStatus != model.ApprovalStatusRejected {
		t.Errorf("status = %s, mau rejected", tr2.KasTransaksiApprovalStatus)
	}
}

func TestUnlock(t *testing.T) {
	tr := pendingTransaksi()
	tr.KasTransaksiApprovalStatus = model.ApprovalStatusApproved
	tr.KasTransaksiLocked = true

	// ketua pun tidak boleh unlock
	if err := Unlock(tr, constants.RoleKetua); !errors.Is(err, ErrTidakBerwenang) {
		t.Fatalf("ketua unlock = %v, mau ErrTidakBerwenang", err)
	}

	if err := Unlock(tr, constants.RoleSuperUser); err != nil {
		t.Fatalf("super user unlock = %v", err)
	}
	if tr.KasTransaksiApprovalStatus != model.ApprovalStatusPending || tr.KasTransaksiLocked {
		t.Errorf("setelah unlock: status=%s locked=%v, mau pending/false",
			tr.KasTransaksiApprovalStatus, tr.KasTransaksiLocked)
	}

	// pending tidak bisa di-unlock
	if err := Unlock(tr, constants.RoleSuperUser); !errors.Is(err, ErrBukanApproved) {
		t.Errorf("unlock pending = %v, mau ErrBukanApproved", err)
	}
}
