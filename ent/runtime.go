// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ijoka-ai/ijoka/ent/agentsession"
	"github.com/ijoka-ai/ijoka/ent/feature"
	"github.com/ijoka-ai/ijoka/ent/featuredependency"
	"github.com/ijoka-ai/ijoka/ent/hookevent"
	"github.com/ijoka-ai/ijoka/ent/insight"
	"github.com/ijoka-ai/ijoka/ent/project"
	"github.com/ijoka-ai/ijoka/ent/schema"
	"github.com/ijoka-ai/ijoka/ent/statusevent"
	"github.com/ijoka-ai/ijoka/ent/step"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescStartedAt is the schema descriptor for started_at field.
	agentsessionDescStartedAt := agentsessionFields[3].Descriptor()
	// agentsession.DefaultStartedAt holds the default value on creation for the started_at field.
	agentsession.DefaultStartedAt = agentsessionDescStartedAt.Default.(func() time.Time)
	// agentsessionDescLastActivity is the schema descriptor for last_activity field.
	agentsessionDescLastActivity := agentsessionFields[4].Descriptor()
	// agentsession.DefaultLastActivity holds the default value on creation for the last_activity field.
	agentsession.DefaultLastActivity = agentsessionDescLastActivity.Default.(func() time.Time)
	// agentsessionDescEventCount is the schema descriptor for event_count field.
	agentsessionDescEventCount := agentsessionFields[6].Descriptor()
	// agentsession.DefaultEventCount holds the default value on creation for the event_count field.
	agentsession.DefaultEventCount = agentsessionDescEventCount.Default.(int)
	// agentsessionDescIsSubagent is the schema descriptor for is_subagent field.
	agentsessionDescIsSubagent := agentsessionFields[7].Descriptor()
	// agentsession.DefaultIsSubagent holds the default value on creation for the is_subagent field.
	agentsession.DefaultIsSubagent = agentsessionDescIsSubagent.Default.(bool)
	featureFields := schema.Feature{}.Fields()
	_ = featureFields
	// featureDescPriority is the schema descriptor for priority field.
	featureDescPriority := featureFields[5].Descriptor()
	// feature.DefaultPriority holds the default value on creation for the priority field.
	feature.DefaultPriority = featureDescPriority.Default.(int)
	// feature.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	feature.PriorityValidator = func() func(int) error {
		validators := featureDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// featureDescWorkCount is the schema descriptor for work_count field.
	featureDescWorkCount := featureFields[8].Descriptor()
	// feature.DefaultWorkCount holds the default value on creation for the work_count field.
	feature.DefaultWorkCount = featureDescWorkCount.Default.(int)
	// featureDescIsPrimary is the schema descriptor for is_primary field.
	featureDescIsPrimary := featureFields[14].Descriptor()
	// feature.DefaultIsPrimary holds the default value on creation for the is_primary field.
	feature.DefaultIsPrimary = featureDescIsPrimary.Default.(bool)
	// featureDescIsSessionWork is the schema descriptor for is_session_work field.
	featureDescIsSessionWork := featureFields[15].Descriptor()
	// feature.DefaultIsSessionWork holds the default value on creation for the is_session_work field.
	feature.DefaultIsSessionWork = featureDescIsSessionWork.Default.(bool)
	// featureDescCreatedAt is the schema descriptor for created_at field.
	featureDescCreatedAt := featureFields[17].Descriptor()
	// feature.DefaultCreatedAt holds the default value on creation for the created_at field.
	feature.DefaultCreatedAt = featureDescCreatedAt.Default.(func() time.Time)
	// featureDescUpdatedAt is the schema descriptor for updated_at field.
	featureDescUpdatedAt := featureFields[18].Descriptor()
	// feature.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	feature.DefaultUpdatedAt = featureDescUpdatedAt.Default.(func() time.Time)
	// feature.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	feature.UpdateDefaultUpdatedAt = featureDescUpdatedAt.UpdateDefault.(func() time.Time)
	featuredependencyFields := schema.FeatureDependency{}.Fields()
	_ = featuredependencyFields
	// featuredependencyDescCreatedAt is the schema descriptor for created_at field.
	featuredependencyDescCreatedAt := featuredependencyFields[2].Descriptor()
	// featuredependency.DefaultCreatedAt holds the default value on creation for the created_at field.
	featuredependency.DefaultCreatedAt = featuredependencyDescCreatedAt.Default.(func() time.Time)
	hookeventFields := schema.HookEvent{}.Fields()
	_ = hookeventFields
	// hookeventDescTimestamp is the schema descriptor for timestamp field.
	hookeventDescTimestamp := hookeventFields[4].Descriptor()
	// hookevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hookevent.DefaultTimestamp = hookeventDescTimestamp.Default.(func() time.Time)
	// hookeventDescSuccess is the schema descriptor for success field.
	hookeventDescSuccess := hookeventFields[7].Descriptor()
	// hookevent.DefaultSuccess holds the default value on creation for the success field.
	hookevent.DefaultSuccess = hookeventDescSuccess.Default.(bool)
	// hookeventDescSummary is the schema descriptor for summary field.
	hookeventDescSummary := hookeventFields[8].Descriptor()
	// hookevent.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	hookevent.SummaryValidator = hookeventDescSummary.Validators[0].(func(string) error)
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescUsageCount is the schema descriptor for usage_count field.
	insightDescUsageCount := insightFields[4].Descriptor()
	// insight.DefaultUsageCount holds the default value on creation for the usage_count field.
	insight.DefaultUsageCount = insightDescUsageCount.Default.(int)
	// insightDescEffectivenessScore is the schema descriptor for effectiveness_score field.
	insightDescEffectivenessScore := insightFields[5].Descriptor()
	// insight.EffectivenessScoreValidator is a validator for the "effectiveness_score" field. It is called by the builders before save.
	insight.EffectivenessScoreValidator = func() func(float64) error {
		validators := insightDescEffectivenessScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(effectiveness_score float64) error {
			for _, fn := range fns {
				if err := fn(effectiveness_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// insightDescFeedbackCount is the schema descriptor for feedback_count field.
	insightDescFeedbackCount := insightFields[6].Descriptor()
	// insight.DefaultFeedbackCount holds the default value on creation for the feedback_count field.
	insight.DefaultFeedbackCount = insightDescFeedbackCount.Default.(int)
	// insightDescHelpfulCount is the schema descriptor for helpful_count field.
	insightDescHelpfulCount := insightFields[7].Descriptor()
	// insight.DefaultHelpfulCount holds the default value on creation for the helpful_count field.
	insight.DefaultHelpfulCount = insightDescHelpfulCount.Default.(int)
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightFields[8].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	statuseventFields := schema.StatusEvent{}.Fields()
	_ = statuseventFields
	// statuseventDescAt is the schema descriptor for at field.
	statuseventDescAt := statuseventFields[3].Descriptor()
	// statusevent.DefaultAt holds the default value on creation for the at field.
	statusevent.DefaultAt = statuseventDescAt.Default.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[5].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
}
