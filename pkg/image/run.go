package image

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devkit-build/devkit/pkg/graph"
	"github.com/devkit-build/devkit/pkg/util/console"
)

type RunOptions struct {
	// Target restricts the run to one image and its dependency closure.
	// Empty means process every declared image.
	Target string
	// PrintTag prints the target's resolved tag to stdout and stops the run
	// once the target itself has been processed. Requires Target.
	PrintTag bool
}

// Run processes images in dependency order, resolving each image's tag from
// the tags of its dependencies and taking each one to a terminal state.
func (b *Builder) Run(ctx context.Context, options RunOptions) error {
	if options.PrintTag && options.Target == "" {
		return errors.New("--print-tag requires a target image to be specified")
	}
	if options.Target != "" {
		if _, ok := b.Store.Get(options.Target); !ok {
			return fmt.Errorf("Target image %q is not a valid image name. Choose from: %s", options.Target, strings.Join(b.Store.Names(), ", "))
		}
	}

	g := graph.New()
	for _, name := range b.Store.Names() {
		g.AddNode(name)
		desc, _ := b.Store.Get(name)
		for _, depName := range desc.Dependencies {
			g.AddEdge(name, depName)
		}
	}

	var order []string
	var err error
	if options.Target != "" {
		order, err = g.SubgraphOrder(options.Target)
		if err != nil {
			return err
		}
		console.Infof("Processing image %q and its dependencies: %s...", options.Target, strings.Join(order, ", "))
	} else {
		order, err = g.TopologicalOrder()
		if err != nil {
			return err
		}
		console.Info("Processing all images...")
	}

	resolved := map[string]string{}
	for _, name := range order {
		desc, ok := b.Store.Get(name)
		if !ok {
			return fmt.Errorf("Image %q is required as a dependency but is not declared in any deps.json", name)
		}

		console.Infof("=== Processing: %s ===", name)
		plan, err := b.plan(desc, resolved)
		if err != nil {
			return err
		}
		// Record the tag before materializing, so it is visible to dependents
		// and to print-tag regardless of which terminal state is reached.
		resolved[name] = plan.Tag

		outcome, err := b.manage(ctx, plan)
		if err != nil {
			return err
		}
		console.Debugf("Image %s reached terminal state: %s", name, outcome)

		if options.PrintTag && name == options.Target {
			console.Output(plan.Tag)
			return nil
		}
		console.Infof("=== Finished processing: %s ===", name)
	}

	if options.PrintTag {
		// The subgraph order always contains the target, so this is
		// unreachable unless the ordering logic is broken.
		return fmt.Errorf("Target image %q was not processed as expected", options.Target)
	}
	if options.Target != "" {
		console.Infof("Targeted image %q and its dependencies processed successfully.", options.Target)
	} else {
		console.Info("All images processed successfully.")
	}
	return nil
}
