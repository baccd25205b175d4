// file: internals/features/finance/kas/service/state_machine.go
package service

import (
	"errors"

	"lingkunganku_backend/internals/constants"
	model "lingkunganku_backend/internals/features/finance/kas/model"
)

/*
   Mesin status persetujuan transaksi kas:

     pending → approved   (ketua)
     pending → rejected   (ketua)
     approved → pending   (unlock, hanya super user)
     rejected → pending   (implisit lewat edit/resubmit)

   approved ATAU locked=true memblokir edit/hapus terlepas dari status,
   kecuali aktornya super user.
*/

var (
	ErrTransaksiTerkunci   = errors.New("transaksi sudah disetujui/terkunci dan tidak bisa diubah")
	ErrHapusNonPending     = errors.New("hanya transaksi berstatus pending yang bisa dihapus")
	ErrBukanPending        = errors.New("hanya transaksi berstatus pending yang bisa disetujui/ditolak")
	ErrBukanApproved       = errors.New("hanya transaksi berstatus approved yang bisa di-unlock")
	ErrTidakBerwenang      = errors.New("role Anda tidak berwenang untuk operasi ini")
)

// CanEdit: edit diizinkan selama tidak approved/locked, atau aktor super user.
func CanEdit(t *model.KasTransaksiModel, role string) error {
	if role == constants.RoleSuperUser {
		return nil
	}
	if t.KasTransaksiApprovalStatus == model.ApprovalStatusApproved || t.KasTransaksiLocked {
		return ErrTransaksiTerkunci
	}
	return nil
}

// CanDelete: hapus hanya selama pending dan tidak terkunci.
func CanDelete(t *model.KasTransaksiModel, role string) error {
	if t.KasTransaksiLocked && role != constants.RoleSuperUser {
		return ErrTransaksiTerkunci
	}
	if t.KasTransaksiApprovalStatus != model.ApprovalStatusPending {
		return ErrHapusNonPending
	}
	return nil
}

// ApplyEditTransition: edit atas transaksi approved diam-diam kembali ke
// pending (harus disetujui ulang); rejected juga kembali ke pending (resubmit).
func ApplyEditTransition(t *model.KasTransaksiModel) {
	switch t.KasTransaksiApprovalStatus {
	case model.ApprovalStatusApproved, model.ApprovalStatusRejected:
		t.KasTransaksiApprovalStatus = model.ApprovalStatusPending
	}
}

// Approve: pending → approved, butuh capability ApproveTransaction.
func Approve(t *model.KasTransaksiModel, role string) error {
	if !constants.RoleHasCapability(role, constants.CapApproveTransaction) {
		return ErrTidakBerwenang
	}
	if t.KasTransaksiApprovalStatus != model.ApprovalStatusPending {
		return ErrBukanPending
	}
	t.KasTransaksiApprovalStatus = model.ApprovalStatusApproved
	return nil
}

// Reject: pending → rejected, butuh capability ApproveTransaction.
func Reject(t *model.KasTransaksiModel, role string) error {
	if !constants.RoleHasCapability(role, constants.CapApproveTransaction) {
		return ErrTidakBerwenang
	}
	if t.KasTransaksiApprovalStatus != model.ApprovalStatusPending {
		return ErrBukanPending
	}
	t.KasTransaksiApprovalStatus = model.ApprovalStatusRejected
	return nil
}

// Unlock: approved → pending, hanya super user.
func Unlock(t *model.KasTransaksiModel, role string) error {
	if !constants.RoleHasCapability(role, constants.CapUnlockTransaction) {
		return ErrTidakBerwenang
	}
	if t.KasTransaksiApprovalStatus != model.ApprovalStatusApproved {
		return ErrBukanApproved
	}
	t.KasTransaksiApprovalStatus = model.ApprovalStatusPending
	t.KasTransaksiLocked = false
	return nil
}
