package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fooddonation/internal/adapters/out/cloudinary"
	"fooddonation/internal/adapters/out/notify"
	"fooddonation/internal/adapters/out/postgres"
	"fooddonation/internal/core/application/usecases/commands"
	"fooddonation/internal/core/application/usecases/queries"
	"fooddonation/internal/core/ports"
	"fooddonation/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	otpNotifier  ports.OTPNotifier
	proofStorage ports.ProofStorage
	otpTTL       time.Duration
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	proofStorage, err := cloudinary.NewProofImageStorage(
		config.CloudinaryCloudName,
		config.CloudinaryAPIKey,
		config.CloudinaryAPISecret,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create proof storage: %w", err)
	}

	var otpTTL time.Duration
	if config.OTPTTLMinutes != "" {
		minutes, parseErr := strconv.Atoi(config.OTPTTLMinutes)
		if parseErr != nil {
			return CompositionRoot{}, fmt.Errorf("invalid OTP TTL: %w", parseErr)
		}
		otpTTL = time.Duration(minutes) * time.Minute
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		otpNotifier:  notify.NewOTPLogNotifier(logger),
		proofStorage: proofStorage,
		otpTTL:       otpTTL,
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateDonationCommandHandler() commands.CreateDonationCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDonationCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitDonationRequestCommandHandler() commands.SubmitDonationRequestCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDonationRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveDonationRequestCommandHandler() commands.ApproveDonationRequestCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveDonationRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateSchedulePickupCommandHandler() commands.SchedulePickupCommandHandler {
	var f commands.TeamUoWFactory = FuncTeamUoWFactory(func() commands.TeamUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSchedulePickupCommandHandler(f)
}

func (c *CompositionRoot) CreateSendOtpCommandHandler() commands.SendOtpCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendOtpCommandHandler(f, c.otpNotifier, c.otpTTL)
}

func (c *CompositionRoot) CreateVerifyOtpCommandHandler() commands.VerifyOtpCommandHandler {
	var f commands.PickupUoWFactory = FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyOtpCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDonationCommandHandler() commands.CompleteDonationCommandHandler {
	var f commands.TeamUoWFactory = FuncTeamUoWFactory(func() commands.TeamUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDonationCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitVolunteerRequestCommandHandler() commands.SubmitVolunteerRequestCommandHandler {
	var f commands.MembershipUoWFactory = FuncMembershipUoWFactory(func() commands.MembershipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitVolunteerRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptVolunteerRequestCommandHandler() commands.AcceptVolunteerRequestCommandHandler {
	var f commands.MembershipUoWFactory = FuncMembershipUoWFactory(func() commands.MembershipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptVolunteerRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOpenDonationsQueryHandler() queries.GetOpenDonationsQueryHandler {
	return queries.NewGetOpenDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNgoRosterQueryHandler() queries.GetNgoRosterQueryHandler {
	return queries.NewGetNgoRosterQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDonationStatsQueryHandler() queries.GetDonationStatsQueryHandler {
	return queries.NewGetDonationStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDonationStatsQueryHandler(), c.logger)
}

func (c *CompositionRoot) ProofStorage() ports.ProofStorage {
	return c.proofStorage
}

type FuncDonationUoWFactory func() commands.DonationUoW

func (f FuncDonationUoWFactory) Create() commands.DonationUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}

type FuncTeamUoWFactory func() commands.TeamUoW

func (f FuncTeamUoWFactory) Create() commands.TeamUoW {
	return f()
}

type FuncMembershipUoWFactory func() commands.MembershipUoW

func (f FuncMembershipUoWFactory) Create() commands.MembershipUoW {
	return f()
}
