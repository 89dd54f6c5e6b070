package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/dependencies/random"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/targeting"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available AI targeting strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := targeting.Registry(random.New())

			names := make([]string, 0, len(registry))
			for name := range registry {
				names = append(names, name)
			}
			sort.Strings(names)

			infos := make([]StrategyInfo, 0, len(names))
			for _, name := range names {
				infos = append(infos, StrategyInfo{
					Name:        name,
					DisplayName: model.TargetingStrategyDisplayName(name),
					Default:     name == model.TargetingStrategyRandom,
				})
			}

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(infos)
			return nil
		},
	}
}
