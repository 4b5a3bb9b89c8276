package cli

import (
	"context"
	"fmt"
)

// Endpoint prints the configured backend address, or updates it when an
// argument is given. Validation failures leave the old address in effect.
func (a *App) Endpoint(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Backend endpoint:", a.endpoints.Get(ctx))
		return nil
	}

	if err := a.endpoints.Set(ctx, args[0]); err != nil {
		fmt.Println("Rejected:", err.Error())
		return err
	}

	fmt.Println("Endpoint updated to", a.endpoints.Get(ctx))
	return nil
}
