package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/levietphu/campuspark/internal/models"
	"github.com/levietphu/campuspark/internal/services"
	"github.com/shopspring/decimal"
)

func originSuffix(origin services.Origin) string {
	if origin == services.OriginFallback {
		return " (demo data, backend unreachable)"
	}
	return ""
}

// Profile shows the signed-in student's account record.
func (a *App) Profile(ctx context.Context) error {
	profile, origin, err := a.accounts.FetchProfile(ctx, "")
	if err != nil {
		fmt.Println("Cannot load profile:", err.Error())
		return err
	}

	fmt.Printf("Profile%s\n", originSuffix(origin))
	fmt.Println("  Student id:", profile.StudentID)
	fmt.Println("  Name:      ", profile.DisplayName)
	fmt.Println("  Balance:   ", profile.Balance.StringFixed(0), "VND")
	if profile.RFIDTag != "" {
		fmt.Println("  RFID tag:  ", profile.RFIDTag)
	}
	fmt.Println("  Bank link: ", profile.BankLinked)

	// Keep the cached session in step with what the backend reported.
	if origin == services.OriginLive && a.auth.IsSignedIn() {
		update := models.ProfileUpdate{
			DisplayName: &profile.DisplayName,
			Balance:     &profile.Balance,
			RFIDTag:     &profile.RFIDTag,
		}
		if err := a.auth.UpdateLocalProfile(ctx, update); err != nil {
			a.log.Warn(ctx, "failed to refresh cached profile", "error", err.Error())
		}
	}
	return nil
}

// History lists the signed-in student's entry/exit records.
func (a *App) History(ctx context.Context) error {
	records, origin, err := a.accounts.FetchHistory(ctx, "")
	if err != nil {
		fmt.Println("Cannot load history:", err.Error())
		return err
	}

	fmt.Printf("Parking history%s\n", originSuffix(origin))
	for _, rec := range records {
		exit := "-"
		if rec.ExitTime != nil {
			exit = rec.ExitTime.Format("2006-01-02 15:04")
		}
		fmt.Printf("  #%d  plate %s  in %s  out %s  [%s]\n",
			rec.ID, rec.Plate, rec.EntryTime.Format("2006-01-02 15:04"), exit, rec.Status)
	}
	return nil
}

// TopUp prompts for an amount and submits a balance top-up. There is no
// offline path here; a failure is reported to the user untouched.
func (a *App) TopUp(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Enter amount (VND)", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Println("Not a number:", raw)
		return err
	}

	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	receipt, err := a.accounts.TopUp(ctx, models.TopUpRequest{Amount: amount, Note: note})
	if err != nil {
		fmt.Println("Top-up failed:", err.Error())
		return err
	}

	fmt.Printf("Top-up confirmed, transaction %s\n", receipt.TransactionID)

	// Refresh the cached balance so the next profile view is current.
	if user := a.auth.CurrentUser(); user != nil {
		newBalance := user.Balance.Add(amount)
		if err := a.auth.UpdateLocalProfile(ctx, models.ProfileUpdate{Balance: &newBalance}); err != nil {
			a.log.Warn(ctx, "failed to refresh cached balance", "error", err.Error())
		}
	}
	return nil
}

// LinkBank marks the profile as linked to a bank account.
func (a *App) LinkBank(ctx context.Context) error {
	linked := true
	if err := a.auth.UpdateLocalProfile(ctx, models.ProfileUpdate{BankLinked: &linked}); err != nil {
		fmt.Println("Cannot link bank:", err.Error())
		return err
	}
	fmt.Println("Bank account linked.")
	return nil
}
