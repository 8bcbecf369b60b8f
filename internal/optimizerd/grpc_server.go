package optimizerd

import (
	"context"
	"log/slog"

	optimizerv1 "github.com/GoSim-25-26J-441/optimizer-core/gen/go/optimizer/v1"
	"github.com/GoSim-25-26J-441/optimizer-core/internal/rules"
	"github.com/GoSim-25-26J-441/optimizer-core/pkg/logger"
	"github.com/GoSim-25-26J-441/optimizer-core/pkg/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OptimizerGRPCServer implements the gRPC OptimizerServiceServer on top of
// the rule tables in internal/rules. It holds no state between calls.
type OptimizerGRPCServer struct {
	optimizerv1.UnimplementedOptimizerServiceServer
	log *slog.Logger
}

// NewOptimizerGRPCServer creates a new OptimizerGRPCServer. A nil log
// falls back to the process default logger.
func NewOptimizerGRPCServer(log *slog.Logger) *OptimizerGRPCServer {
	if log == nil {
		log = logger.Default
	}
	return &OptimizerGRPCServer{log: log}
}

func (s *OptimizerGRPCServer) OptimizeHeatParams(ctx context.Context, req *optimizerv1.HeatGoal) (*optimizerv1.HeatParams, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "goal is required")
	}

	params := rules.DeriveHeatParams(req.TargetProperty)

	// desired_value is logged but not consulted by the derivation.
	s.log.Info("optimized heat goal",
		"request_id", utils.GenerateRequestID(),
		"target_property", req.TargetProperty,
		"desired_value", req.DesiredValue,
		"diffusion_rate", params.DiffusionRate,
		"time_steps", params.TimeSteps,
		"delta_t", params.DeltaT,
	)

	return &optimizerv1.HeatParams{
		Width:         params.Width,
		Height:        params.Height,
		DiffusionRate: params.DiffusionRate,
		TimeSteps:     params.TimeSteps,
		DeltaT:        params.DeltaT,
		DeltaX:        params.DeltaX,
	}, nil
}

func (s *OptimizerGRPCServer) OptimizeNBodyParams(ctx context.Context, req *optimizerv1.NBodyGoal) (*optimizerv1.NBodyParams, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "goal is required")
	}

	params := rules.DeriveNBodyParams(req.TargetBehavior, req.BodyCount)

	s.log.Info("optimized n-body goal",
		"request_id", utils.GenerateRequestID(),
		"target_behavior", req.TargetBehavior,
		"body_count", req.BodyCount,
		"num_bodies", params.NumBodies,
		"g_constant", params.GConstant,
		"delta_t", params.DeltaT,
	)

	return &optimizerv1.NBodyParams{
		NumBodies: params.NumBodies,
		TimeSteps: params.TimeSteps,
		DeltaT:    params.DeltaT,
		GConstant: params.GConstant,
	}, nil
}
