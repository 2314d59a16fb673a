package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"property-engine/internal/auth"
	"property-engine/internal/config"
	"property-engine/internal/logging"
	"property-engine/internal/models"
	"property-engine/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "property-admin",
	Short: "Property Engine Administration CLI",
	Long:  `A command-line interface for managing accounts and records of the property engine.`,
}

var (
	flagEmail    string
	flagPassword string
	flagFullName string
	flagRole     string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create an account with a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, log, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		tokens := auth.NewTokenManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.JWTIssuer, time.Hour)
		sessions := auth.NewSessionManager(st, tokens, log)

		profile, err := sessions.SignUp(context.Background(), flagEmail, flagPassword, flagFullName, models.Role(flagRole))
		if err != nil {
			return err
		}
		fmt.Printf("Created %s account %s (%s)\n", flagRole, profile.Email, profile.ID)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database status",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, _, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		if err := st.Ping(ctx); err != nil {
			return fmt.Errorf("database unreachable: %w", err)
		}
		count, err := st.CountProfiles(ctx)
		if err != nil {
			return err
		}
		fmt.Println("Property Engine Status:")
		fmt.Println("  Database: reachable")
		fmt.Printf("  Accounts: %d\n", count)
		return nil
	},
}

var seedDemoCmd = &cobra.Command{
	Use:   "seed-demo",
	Short: "Create a demo landlord with sample records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, log, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		tokens := auth.NewTokenManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.JWTIssuer, time.Hour)
		sessions := auth.NewSessionManager(st, tokens, log)

		profile, err := sessions.SignUp(ctx, "demo@property-engine.local", "demo-password", "Demo Landlord", models.RoleLandlord)
		if err != nil {
			return err
		}

		property := &models.Property{
			Name:       "Sunset Apartments",
			Address:    "123 Ocean Drive",
			Type:       models.PropertyApartment,
			Units:      12,
			RentAmount: 1500,
			Status:     models.PropertyOccupied,
			LandlordID: profile.ID,
		}
		if err := st.CreateProperty(ctx, property); err != nil {
			return err
		}

		tenant := &models.Tenant{
			Name:       "Jordan Smith",
			Email:      "jordan@example.com",
			Phone:      "5551234567",
			PropertyID: &property.ID,
			MoveInDate: "2025-01-15",
			LeaseEnd:   "2026-01-15",
			RentStatus: models.RentPaid,
			LandlordID: profile.ID,
		}
		if err := st.CreateTenant(ctx, tenant); err != nil {
			return err
		}

		paidDate := "2025-02-01"
		payment := &models.RentPayment{
			TenantID:   &tenant.ID,
			PropertyID: property.ID,
			Amount:     1500,
			DueDate:    "2025-02-01",
			PaidDate:   &paidDate,
			Status:     models.RentPaid,
			Month:      "2025-02",
			LandlordID: profile.ID,
		}
		if err := st.CreateRentPayment(ctx, payment); err != nil {
			return err
		}

		request := &models.MaintenanceRequest{
			PropertyID:  property.ID,
			TenantID:    &tenant.ID,
			RequestedBy: profile.ID,
			Title:       "Leaking kitchen faucet",
			Description: "The kitchen faucet has been dripping for a week.",
			Priority:    models.PriorityMedium,
			Status:      models.RequestPending,
			LandlordID:  profile.ID,
		}
		if err := st.CreateMaintenanceRequest(ctx, request); err != nil {
			return err
		}

		fmt.Printf("Seeded demo landlord %s with one property, tenant, payment and request\n", profile.Email)
		return nil
	},
}

var sweepOverdueCmd = &cobra.Command{
	Use:   "sweep-overdue",
	Short: "Mark past-due pending rent payments as overdue",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, _, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		today := time.Now().Format("2006-01-02")
		count, owners, err := st.MarkOverduePayments(context.Background(), today)
		if err != nil {
			return err
		}
		fmt.Printf("Marked %d payments overdue across %d owners\n", count, len(owners))
		return nil
	},
}

func openStore() (*config.Config, *store.Store, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, zerolog.Logger{}, fmt.Errorf("load configuration: %w", err)
	}
	log := logging.New(cfg.Logging)
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, nil, zerolog.Logger{}, fmt.Errorf("open store: %w", err)
	}
	return cfg, st, log, nil
}

func init() {
	createUserCmd.Flags().StringVar(&flagEmail, "email", "", "account email")
	createUserCmd.Flags().StringVar(&flagPassword, "password", "", "account password")
	createUserCmd.Flags().StringVar(&flagFullName, "name", "", "display name")
	createUserCmd.Flags().StringVar(&flagRole, "role", string(models.RoleLandlord), "account role (admin, landlord, tenant)")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(seedDemoCmd)
	rootCmd.AddCommand(sweepOverdueCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
