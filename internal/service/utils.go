package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}

// backoffPolicy параметры повторов. Attempts == 0 означает повторять до отмены контекста.
type backoffPolicy struct {
	Attempts uint
	Base     time.Duration
	Max      time.Duration
}

const backoffSpread = 0.15

// delay задержка перед попыткой номер attempt (с нуля): экспонента от Base, ограниченная Max, с разбросом 15%.
func (p backoffPolicy) delay(attempt uint) time.Duration {
	return time.Duration(jitter(float64(p.nominal(attempt)), backoffSpread, backoffSpread))
}

// maxDelay верхняя граница delay(attempt) с учетом разброса.
func (p backoffPolicy) maxDelay(attempt uint) time.Duration {
	return time.Duration(float64(p.nominal(attempt)) * (1 + backoffSpread))
}

func (p backoffPolicy) nominal(attempt uint) time.Duration {
	d := p.Base
	for i := uint(0); i < attempt && (p.Max == 0 || d < p.Max); i++ {
		d *= 2
	}
	if p.Max > 0 && d > p.Max {
		d = p.Max
	}
	return d
}

// retry вызывает fn, пока она возвращает ошибку, для которой retryable == true, но не больше p.Attempts раз.
// Возвращает последнюю ошибку fn или ошибку контекста, если он завершился во время ожидания.
func retry(ctx context.Context, p backoffPolicy, retryable func(error) bool, fn func(context.Context) error) error {
	var err error
	for attempt := uint(0); p.Attempts == 0 || attempt < p.Attempts; attempt++ {
		if err = fn(ctx); err == nil || !retryable(err) {
			return err
		}
		if p.Attempts != 0 && attempt+1 == p.Attempts {
			break
		}

		timer := time.NewTimer(p.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}
	}
	return err
}
