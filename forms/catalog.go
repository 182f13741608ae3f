package forms

// Catalog is the static set of REC submission forms. Field order matters:
// it is the render order.
var Catalog = []FormDefinition{
	protocolFinalReportForm,
	reportNewEventForm,
	progressReportForm,
	protocolAmendmentForm,
	continuingReviewForm,
	earlyTerminationForm,
}

var protocolFinalReportForm = FormDefinition{
	ID:          "protocol-final-report",
	Title:       "Protocol Final Report",
	Description: "Comprehensive summary of the completed research protocol.",
	Category:    "Study Closure",
	SubmitLabel: "Submit Final Report",
	Fields: []FormField{
		{Name: "protocol_title", Label: "Protocol / Study Title", Type: FieldText, Required: true, Placeholder: "Enter full protocol title"},
		{Name: "protocol_number", Label: "Protocol / REC Reference Number", Type: FieldText, Required: true},
		{Name: "principal_investigator", Label: "Principal Investigator (PI)", Type: FieldText, Required: true},
		{Name: "pi_email", Label: "PI Email", Type: FieldText, Required: true},
		{Name: "sponsor_name", Label: "Sponsor / Funding Agency", Type: FieldText},
		{Name: "study_site", Label: "Study Site(s)", Type: FieldTextarea, Rows: 2, Placeholder: "List sites"},
		{Name: "date_first_enrollment", Label: "Date of First Enrollment", Type: FieldDate},
		{Name: "date_last_enrollment", Label: "Date of Last Enrollment", Type: FieldDate},
		{Name: "date_study_completion", Label: "Date Study Completed", Type: FieldDate, Required: true},
		{Name: "registered_clinical_trial", Label: "Registered Clinical Trial ID", Type: FieldText, Placeholder: "e.g., ClinicalTrials.gov ID"},
		{Name: "study_objectives", Label: "Primary & Secondary Objectives", Type: FieldTextarea, Rows: 4, Required: true},
		{Name: "study_design", Label: "Study Design Summary", Type: FieldTextarea, Rows: 3, Required: true},
		{Name: "population_description", Label: "Population Description", Type: FieldTextarea, Rows: 3, Required: true},
		{Name: "target_sample_size", Label: "Target Sample Size", Type: FieldNumber, Required: true},
		{Name: "actual_enrolled", Label: "Actual Number Enrolled", Type: FieldNumber, Required: true},
		{Name: "completed_participants", Label: "Number Completed Study", Type: FieldNumber},
		{Name: "withdrawn_participants", Label: "Number Withdrawn / Lost to Follow-up", Type: FieldNumber},
		{Name: "reasons_withdrawal", Label: "Reasons for Withdrawal", Type: FieldTextarea, Rows: 3},
		{Name: "protocol_amendments", Label: "Summary of Protocol Amendments", Type: FieldTextarea, Rows: 4},
		{Name: "serious_adverse_events", Label: "Serious Adverse Events (Summary)", Type: FieldTextarea, Rows: 4},
		{Name: "adverse_events", Label: "Other Adverse Events (Summary)", Type: FieldTextarea, Rows: 4},
		{Name: "unanticipated_problems", Label: "Unanticipated Problems / Deviations", Type: FieldTextarea, Rows: 4},
		{Name: "study_limitations", Label: "Study Limitations", Type: FieldTextarea, Rows: 3},
		{Name: "primary_outcomes", Label: "Primary Outcomes (Results)", Type: FieldTextarea, Rows: 5, Required: true},
		{Name: "secondary_outcomes", Label: "Secondary Outcomes (Results)", Type: FieldTextarea, Rows: 5},
		{Name: "statistical_analysis_summary", Label: "Statistical Analysis Summary", Type: FieldTextarea, Rows: 4},
		{Name: "conclusions", Label: "Conclusions / Interpretation", Type: FieldTextarea, Rows: 4, Required: true},
		{Name: "dissemination_plan", Label: "Publication / Dissemination Plan", Type: FieldTextarea, Rows: 3},
		{Name: "data_storage_location", Label: "Data Storage / Archival Location", Type: FieldTextarea, Rows: 2},
		{Name: "documents_submitted", Label: "Documents Submitted (Attach if required)", Type: FieldTextarea, Rows: 2, Help: "List documents like final dataset, statistical report, participant list (anonymized), etc."},
		{Name: "pi_signature_name", Label: "PI Name (Signature)", Type: FieldText, Required: true},
		{Name: "pi_signature_date", Label: "Signature Date", Type: FieldDate, Required: true},
	},
}

var reportNewEventForm = FormDefinition{
	ID:          "rec-fo-0021-rne",
	Title:       "Report of New Event (RNE)",
	Description: "Report unexpected events: adverse events, deviations, early termination, safety info.",
	Category:    "Safety Reporting",
	SubmitLabel: "Submit Event Report",
	Fields: []FormField{
		{Name: "protocol_title", Label: "Protocol Title", Type: FieldText, Required: true},
		{Name: "rec_reference_number", Label: "REC Reference Number", Type: FieldText, Required: true},
		{Name: "site", Label: "Study Site", Type: FieldText, Required: true},
		{Name: "event_type", Label: "Event Type", Type: FieldSelect, Required: true, Options: []string{
			"Serious Adverse Event",
			"Adverse Event",
			"Protocol Deviation",
			"Unanticipated Problem",
			"Early Study Termination",
			"Safety Information Update",
			"Other",
		}},
		{Name: "other_event_type", Label: "If Other, Specify", Type: FieldText, Placeholder: "Specify event type", DependsOn: "event_type", ShowIfEquals: "Other"},
		{Name: "date_of_event", Label: "Date of Event", Type: FieldDate, Required: true},
		{Name: "date_reported_to_rec", Label: "Date Reported to REC", Type: FieldDate, Required: true},
		{Name: "subject_id", Label: "Subject / Participant ID (if applicable)", Type: FieldText},
		{Name: "age", Label: "Age (if subject specific)", Type: FieldNumber},
		{Name: "gender", Label: "Gender (if subject specific)", Type: FieldSelect, Options: []string{"Male", "Female", "Other", "Prefer not to say"}},
		{Name: "event_description", Label: "Detailed Description of Event", Type: FieldTextarea, Rows: 5, Required: true},
		{Name: "immediate_actions", Label: "Immediate Actions Taken", Type: FieldTextarea, Rows: 4, Required: true},
		{Name: "medical_management", Label: "Medical Management / Treatment Provided", Type: FieldTextarea, Rows: 4},
		{Name: "relatedness_assessment", Label: "Assessment of Relatedness to Study Intervention", Type: FieldTextarea, Rows: 3, Help: "Describe investigator assessment (e.g., Not related, Possibly related, Definitely related)."},
		{Name: "risk_assessment", Label: "Assessment of Risk / Impact on Participants", Type: FieldTextarea, Rows: 4},
		{Name: "corrective_actions", Label: "Proposed Corrective / Preventive Actions (CAPA)", Type: FieldTextarea, Rows: 4, Required: true},
		{Name: "need_for_amendment", Label: "Need for Protocol / ICF Amendment? (Yes/No + Rationale)", Type: FieldTextarea, Rows: 3},
		{Name: "regulatory_notified", Label: "Regulatory Authorities Notified (Names / Dates)", Type: FieldTextarea, Rows: 3},
		{Name: "other_sites_affected", Label: "Other Sites Affected / Notified", Type: FieldTextarea, Rows: 3},
		{Name: "documents_attached", Label: "Documents Attached", Type: FieldTextarea, Rows: 2, Help: "List: medical reports, lab results, narrative, DSMB notice, etc."},
		{Name: "reporting_person", Label: "Reporting Person (Name & Role)", Type: FieldText, Required: true},
		{Name: "reporting_person_email", Label: "Reporting Person Email", Type: FieldText, Required: true},
		{Name: "pi_confirmation", Label: "PI Confirmation / Remarks", Type: FieldTextarea, Rows: 3},
		{Name: "pi_signature_name", Label: "PI Name (Signature)", Type: FieldText, Required: true},
		{Name: "pi_signature_date", Label: "Signature Date", Type: FieldDate, Required: true},
	},
}

var progressReportForm = FormDefinition{
	ID:          "progress-report",
	Title:       "Progress Report",
	Description: "Interim progress update on ongoing approved protocol.",
	Category:    "Ongoing Study Reports",
	SubmitLabel: "Submit Progress Report",
	Fields: []FormField{
		{Name: "protocol_title", Label: "Protocol Title", Type: FieldText, Required: true},
		{Name: "rec_reference_number", Label: "REC Reference Number", Type: FieldText, Required: true},
		{Name: "principal_investigator", Label: "Principal Investigator", Type: FieldText, Required: true},
		{Name: "reporting_period_start", Label: "Reporting Period Start Date", Type: FieldDate, Required: true},
		{Name: "reporting_period_end", Label: "Reporting Period End Date", Type: FieldDate, Required: true},
		{Name: "date_submitted", Label: "Date Submitted", Type: FieldDate, Required: true},
		{Name: "overall_progress_summary", Label: "Overall Progress Summary", Type: FieldTextarea, Rows: 5, Required: true},
		{Name: "enrollment_target", Label: "Target Enrollment (Cumulative)", Type: FieldNumber, Required: true},
		{Name: "enrollment_actual", Label: "Actual Enrollment to Date", Type: FieldNumber, Required: true},
		{Name: "reasons_enrollment_variance", Label: "Reasons for Enrollment Variance", Type: FieldTextarea, Rows: 3},
		{Name: "withdrawals_count", Label: "Participant Withdrawals (Count)", Type: FieldNumber},
		{Name: "withdrawals_reasons", Label: "Reasons for Withdrawal", Type: FieldTextarea, Rows: 3},
		{Name: "protocol_deviations", Label: "Protocol Deviations During Period", Type: FieldTextarea, Rows: 4},
		{Name: "serious_adverse_events", Label: "Serious Adverse Events Since Last Report", Type: FieldTextarea, Rows: 4},
		{Name: "other_adverse_events", Label: "Other Adverse Events", Type: FieldTextarea, Rows: 3},
		{Name: "amendments_submitted", Label: "Amendments Submitted/Approved", Type: FieldTextarea, Rows: 3},
		{Name: "interim_findings", Label: "Interim Findings / Preliminary Results", Type: FieldTextarea, Rows: 4},
		{Name: "data_safety_monitoring", Label: "Data / Safety Monitoring Activities", Type: FieldTextarea, Rows: 3},
		{Name: "challenges", Label: "Challenges / Obstacles", Type: FieldTextarea, Rows: 3},
		{Name: "mitigation_actions", Label: "Mitigation / Corrective Actions", Type: FieldTextarea, Rows: 3},
		{Name: "anticipated_changes", Label: "Anticipated Changes Before Next Report", Type: FieldTextarea, Rows: 3},
		{Name: "continuing_need_justification", Label: "Justification for Continuing the Study", Type: FieldTextarea, Rows: 4, Required: true},
		{Name: "pi_signature_name", Label: "PI Name (Signature)", Type: FieldText, Required: true},
		{Name: "pi_signature_date", Label: "Signature Date", Type: FieldDate, Required: true},
	},
}

var protocolAmendmentForm = FormDefinition{
	ID:          "protocol-amendment",
	Title:       "Protocol Amendment",
	Description: "Submission of proposed changes to an approved protocol.",
	Category:    "Amendments",
	SubmitLabel: "Submit Amendment",
	Fields: []FormField{
		{Name: "protocol_title", Label: "Protocol Title", Type: FieldText, Required: true},
		{Name: "rec_reference_number", Label: "REC Reference Number", Type: FieldText, Required: true},
		{Name: "principal_investigator", Label: "Principal Investigator", Type: FieldText, Required: true},
		{Name: "amendment_number", Label: "Amendment Number / Identifier", Type: FieldText, Required: true},
		{Name: "date_submitted", Label: "Date Submitted", Type: FieldDate, Required: true},
		{Name: "reason_for_amendment", Label: "Reason for Amendment", Type: FieldTextarea, Rows: 4, Required: true},
		{Name: "summary_of_changes", Label: "Summary of Proposed Changes", Type: FieldTextarea, Rows: 6, Required: true},
		{Name: "affected_sections", Label: "Affected Sections / Documents", Type: FieldTextarea, Rows: 4, Help: "List protocol sections, ICF, CRFs, recruitment materials, etc."},
		{Name: "impact_assessment", Label: "Impact on Study Design / Participants", Type: FieldTextarea, Rows: 5, Required: true},
		{Name: "changes_to_risk", Label: "Changes to Risk-Benefit Assessment", Type: FieldTextarea, Rows: 4},
		{Name: "changes_to_informed_consent", Label: "Changes to Informed Consent Process", Type: FieldTextarea, Rows: 4},
		{Name: "changes_to_sample_size", Label: "Changes to Sample Size / Statistical Plan", Type: FieldTextarea, Rows: 4},
		{Name: "ongoing_participants_management", Label: "Management of Already Enrolled Participants", Type: FieldTextarea, Rows: 4},
		{Name: "supporting_documents", Label: "Supporting Documents List", Type: FieldTextarea, Rows: 3, Help: "List tracked-change protocol, clean copy, revised ICF, recruitment materials, etc."},
		{Name: "urgent_implementation", Label: "Implemented Prior to Approval? (If Yes, Justification)", Type: FieldTextarea, Rows: 3},
		{Name: "capa_if_applicable", Label: "CAPA Related (If deviation-triggered)", Type: FieldTextarea, Rows: 3},
		{Name: "pi_signature_name", Label: "PI Name (Signature)", Type: FieldText, Required: true},
		{Name: "pi_signature_date", Label: "Signature Date", Type: FieldDate, Required: true},
	},
}

var continuingReviewForm = FormDefinition{
	ID:          "continuing-review",
	Title:       "Continuing Review Application",
	Description: "Periodic ethics continuing review submission for an approved ongoing study.",
	Category:    "Continuing Review",
	SubmitLabel: "Submit Continuing Review",
	Fields: []FormField{
		{Name: "protocol_title", Label: "Protocol Title", Type: FieldText, Required: true},
		{Name: "rec_reference_number", Label: "REC Reference Number", Type: FieldText, Required: true},
		{Name: "principal_investigator", Label: "Principal Investigator", Type: FieldText, Required: true},
		{Name: "date_initial_approval", Label: "Initial REC Approval Date", Type: FieldDate, Required: true},
		{Name: "current_approval_expiry", Label: "Current Approval Expiry Date", Type: FieldDate, Required: true},
		{Name: "period_start", Label: "Reporting Period Start", Type: FieldDate, Required: true},
		{Name: "period_end", Label: "Reporting Period End", Type: FieldDate, Required: true},
		{Name: "enrollment_target_to_date", Label: "Target Enrollment to Date", Type: FieldNumber, Required: true},
		{Name: "enrollment_actual_to_date", Label: "Actual Enrollment to Date", Type: FieldNumber, Required: true},
		{Name: "enrollment_explanation", Label: "Explanation for Enrollment Variance", Type: FieldTextarea, Rows: 3},
		{Name: "participants_completed", Label: "Participants Completed", Type: FieldNumber},
		{Name: "participants_withdrawn", Label: "Participants Withdrawn", Type: FieldNumber},
		{Name: "withdrawal_reasons", Label: "Reasons for Withdrawal", Type: FieldTextarea, Rows: 3},
		{Name: "summary_progress", Label: "Summary of Study Progress Since Last Approval", Type: FieldTextarea, Rows: 5, Required: true},
		{Name: "amendments_since_last", Label: "Amendments Since Last Approval (List / Dates)", Type: FieldTextarea, Rows: 4},
		{Name: "protocol_deviations_since_last", Label: "Protocol Deviations Since Last Approval", Type: FieldTextarea, Rows: 4},
		{Name: "serious_adverse_events_since_last", Label: "Serious Adverse Events Since Last Approval", Type: FieldTextarea, Rows: 4},
		{Name: "other_adverse_events_since_last", Label: "Other Adverse Events Since Last Approval", Type: FieldTextarea, Rows: 3},
		{Name: "unanticipated_problems", Label: "Unanticipated Problems / New Information", Type: FieldTextarea, Rows: 4},
		{Name: "new_risks", Label: "New Risks or Risk Changes Identified", Type: FieldTextarea, Rows: 3},
		{Name: "confidentiality_issues", Label: "Confidentiality / Data Security Issues", Type: FieldTextarea, Rows: 3},
		{Name: "monitoring_summary", Label: "Monitoring / DSMB Reports Summary", Type: FieldTextarea, Rows: 4},
		{Name: "publications_or_presentations", Label: "Publications / Presentations to Date", Type: FieldTextarea, Rows: 3},
		{Name: "materials_to_renew", Label: "Materials Submitted for Renewal", Type: FieldTextarea, Rows: 3, Help: "List updated protocol, ICF, recruitment materials, investigator brochure, safety reports, etc."},
		{Name: "continuing_need_justification", Label: "Justification for Continuing the Study", Type: FieldTextarea, Rows: 5, Required: true},
		{Name: "anticipated_completion_date", Label: "Anticipated Study Completion Date", Type: FieldDate},
		{Name: "pi_signature_name", Label: "PI Name (Signature)", Type: FieldText, Required: true},
		{Name: "pi_signature_date", Label: "Signature Date", Type: FieldDate, Required: true},
	},
}

var earlyTerminationForm = FormDefinition{
	ID:          "early-study-termination",
	Title:       "Early Study Termination",
	Description: "Application for early termination of an approved study prior to planned completion.",
	Category:    "Study Closure",
	SubmitLabel: "Submit Termination Application",
	Fields: []FormField{
		{Name: "protocol_title", Label: "Protocol Title", Type: FieldText, Required: true},
		{Name: "rec_reference_number", Label: "REC Reference Number", Type: FieldText, Required: true},
		{Name: "principal_investigator", Label: "Principal Investigator", Type: FieldText, Required: true},
		{Name: "termination_request_date", Label: "Date of Termination Request", Type: FieldDate, Required: true},
		{Name: "original_anticipated_completion", Label: "Original Anticipated Completion Date", Type: FieldDate},
		{Name: "date_last_participant_activity", Label: "Date of Last Participant Activity", Type: FieldDate},
		{Name: "enrolled_participants_total", Label: "Total Participants Enrolled", Type: FieldNumber, Required: true},
		{Name: "participants_completed", Label: "Participants Completed Study", Type: FieldNumber},
		{Name: "participants_in_followup", Label: "Participants in Follow-up", Type: FieldNumber},
		{Name: "participants_withdrawn", Label: "Participants Withdrawn / Lost", Type: FieldNumber},
		{Name: "reason_for_termination", Label: "Primary Reason for Early Termination", Type: FieldSelect, Required: true, Options: []string{
			"Safety Concerns", "Lack of Efficacy", "Regulatory Directive", "Funding / Resource Constraints", "Poor Enrollment", "Protocol Feasibility Issues", "Sponsor Decision", "Other",
		}},
		{Name: "other_reason_detail", Label: "If Other, Specify", Type: FieldText, DependsOn: "reason_for_termination", ShowIfEquals: "Other"},
		{Name: "detailed_rationale", Label: "Detailed Rationale / Background", Type: FieldTextarea, Rows: 5, Required: true},
		{Name: "safety_findings_summary", Label: "Summary of Any Safety Findings", Type: FieldTextarea, Rows: 4},
		{Name: "efficacy_findings_summary", Label: "Summary of Any Efficacy / Outcome Findings", Type: FieldTextarea, Rows: 4},
		{Name: "data_collected_status", Label: "Status of Data Collected / Integrity", Type: FieldTextarea, Rows: 4},
		{Name: "disposition_of_participants", Label: "Disposition / Management of Current Participants", Type: FieldTextarea, Rows: 4, Required: true},
		{Name: "followup_plan", Label: "Plan for Participant Follow-up / Safety Monitoring", Type: FieldTextarea, Rows: 4},
		{Name: "study_materials_storage", Label: "Storage / Archiving of Study Materials & Data", Type: FieldTextarea, Rows: 3},
		{Name: "investigational_products_accountability", Label: "Investigational Products Accountability / Disposal", Type: FieldTextarea, Rows: 3},
		{Name: "notifications_done", Label: "Notifications (Sponsor, Regulatory, DSMB, etc.)", Type: FieldTextarea, Rows: 3},
		{Name: "publications_plan", Label: "Publication / Dissemination Plan (If Applicable)", Type: FieldTextarea, Rows: 3},
		{Name: "documents_submitted", Label: "Documents Submitted With Application", Type: FieldTextarea, Rows: 3, Help: "List: final data listings, safety reports, inventory logs, communication letters, etc."},
		{Name: "pi_signature_name", Label: "PI Name (Signature)", Type: FieldText, Required: true},
		{Name: "pi_signature_date", Label: "Signature Date", Type: FieldDate, Required: true},
	},
}
