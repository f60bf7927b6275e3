// Package callflow holds the pure decision logic of the call orchestrator: the call
// state machine, the lead scoring policy, the playbook context resolver, the follow-up
// template resolver and the sentiment score extractor. Nothing in this package performs
// I/O; services load records, ask callflow what to do and persist the result.
package callflow
