package services

import "research-archive-api/models"

// This file is the status transition function of the review workflow,
// kept as pure functions so the state machine can be tested exhaustively.
//
//	pending --staff approve-->   pending (awaiting officer)
//	pending --staff reject-->    rejected
//	pending --officer approve--> approved                       terminal
//	pending --officer reject-->  rejected        (resubmissionCount = 0)
//	pending --officer reject-->  rejected_final  (resubmissionCount >= 1, terminal)
//
// A rejected paper re-enters pending only through resubmission, which is
// handled by ResubmitPaper and limited to officer rejections.

// NextStatus derives the paper status that results from recording a review
// decision on a pending paper.
func NextStatus(decision models.ReviewDecision, reviewerRole models.Role, resubmissionCount int) models.PaperStatus {
	if decision == models.DecisionRejected {
		if reviewerRole == models.RoleOfficer && resubmissionCount >= 1 {
			return models.StatusRejectedFinal
		}
		return models.StatusRejected
	}
	if reviewerRole == models.RoleOfficer {
		return models.StatusApproved
	}
	return models.StatusPending
}

// NextApprovalCount derives the informational approval counter after a
// decision. Officer approval force-sets it to 2 regardless of the prior
// value: approval is terminal whether or not a staff tier ran, which covers
// the staff-author fast path that skips staff review entirely.
func NextApprovalCount(decision models.ReviewDecision, reviewerRole models.Role, current int) int {
	if decision == models.DecisionRejected {
		return current
	}
	if reviewerRole == models.RoleOfficer {
		return 2
	}
	return current + 1
}

// DeletionEligible reports whether the submitter may delete the paper given
// its recorded reviews. Any one clause suffices:
//
//	a) untouched submission: still pending with no reviews at all
//	b) rejected at the staff tier
//	c) staff-authored paper rejected by the officer
//	d) terminally rejected, regardless of author role
func DeletionEligible(paper models.Paper, reviews []models.Review) bool {
	if paper.Status == models.StatusPending && len(reviews) == 0 {
		return true
	}
	if hasReviewDecision(reviews, models.RoleStaff, models.DecisionRejected) {
		return true
	}
	if paper.AuthorRole == models.RoleStaff &&
		hasReviewDecision(reviews, models.RoleOfficer, models.DecisionRejected) &&
		(paper.Status == models.StatusRejected || paper.Status == models.StatusRejectedFinal) {
		return true
	}
	return paper.Status == models.StatusRejectedFinal
}

func hasReview(reviews []models.Review, role models.Role) bool {
	for _, review := range reviews {
		if review.ReviewerRole == role {
			return true
		}
	}
	return false
}

func hasReviewDecision(reviews []models.Review, role models.Role, decision models.ReviewDecision) bool {
	for _, review := range reviews {
		if review.ReviewerRole == role && review.Decision == decision {
			return true
		}
	}
	return false
}
