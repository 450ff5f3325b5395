// Package flowstate provides a generic, declarative finite-state-machine
// workflow service.
//
// Clients register workflow definitions (states plus the actions that
// connect them), instantiate running copies and drive each instance
// forward through validated transitions. The layers are pluggable:
//
//   - model    – the definition vocabulary (states, actions)
//   - engine   – definition validation and transition guards
//   - dao      – in-memory definition and instance stores
//   - event    – lifecycle notifications over messaging queues
//   - gateway  – HTTP glue over the engine
//
// Flowstate is designed to be embedded in host applications. End-users
// typically interact through the high-level Service façade exposed by
// the root package:
//
//	srv := flowstate.New()
//	rt := srv.Runtime()
//	def, _ := rt.LoadDefinition(ctx, "approval.yaml")
//	instance, _ := rt.StartInstance(ctx, def.ID)
//	instance, _ = rt.ExecuteAction(ctx, instance.ID, "approve")
//
// For more details see the individual sub-packages.
package flowstate
