package application

import "roommind/internal/domain"

// ReferentialErrors converts dropped placements with unknown parents into
// ReferentialIntegrityErrors, for logging
func ReferentialErrors(dropped []domain.DroppedPlacement) []error {
	var errs []error
	for _, d := range dropped {
		if d.Reason != domain.DropUnknownAnchor {
			continue
		}
		errs = append(errs, &ReferentialIntegrityError{
			Placement: d.Placement.Name,
			AnchorID:  d.Placement.ParentAnchorID,
		})
	}
	return errs
}
