// Package report renders a network.Outcome for people and for other tools.
//
// NewDocument flattens an Outcome into a Document whose JSON layout has one
// section per stage of the run:
//
//	task_1_and_2  cost_matrix, allocations[], remaining_capacities[]
//	task_3        resource_transfers[], final_resource_levels[]
//	task_4        initial_clusters[], clusters_after_merging[], queries[]
//
// WriteJSON stores a Document through an afero.Fs; WriteText prints the
// same information as tables using github.com/olekukonko/tablewriter, with
// quantities formatted by github.com/dustin/go-humanize.
package report
